// Package decl loads enum declaration documents and compiles them
// into finished enum objects. Documents are structured data (YAML),
// not source text: each declares an ordered member list that feeds
// the enum builder unchanged.
package decl

// Document is the root of a declaration file.
type Document struct {
	Enums []EnumDecl `yaml:"enums"`
}

// EnumDecl declares one enum: a binding name, an optional
// auto-initialization policy and an ordered member list.
type EnumDecl struct {
	Name string `yaml:"name"`
	// Auto selects the policy for members with no value: "" requires
	// every member to carry one, "number" enables numeric
	// auto-increment.
	Auto    string       `yaml:"auto,omitempty"`
	Members []MemberDecl `yaml:"members"`
}

// MemberDecl declares one member. At most one value form may be set;
// a member with none is bare and relies on the enum's auto policy.
// Ref names a member declared earlier in the same enum; symbol mints
// a fresh symbol with the given description.
type MemberDecl struct {
	Name   string   `yaml:"name"`
	Number *float64 `yaml:"number,omitempty"`
	String *string  `yaml:"string,omitempty"`
	Bool   *bool    `yaml:"bool,omitempty"`
	BigInt *string  `yaml:"bigint,omitempty"`
	Symbol *string  `yaml:"symbol,omitempty"`
	Ref    *string  `yaml:"ref,omitempty"`
}
