package enum

// Member is one resolved (name, value) pair of an enum object.
type Member struct {
	Name  Key
	Value Value
}

// MemberSpec is one entry of a declaration, in source order. Value
// and Init are mutually exclusive; when both are unset the member is
// bare and its value comes from the enum's auto-initialization
// policy.
type MemberSpec struct {
	Name  Key
	Value Value
	Init  Initializer
}
