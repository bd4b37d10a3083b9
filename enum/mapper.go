package enum

// MapRequest carries the context a Mapper may use to compute a value
// for a bare member.
type MapRequest struct {
	Enum    string
	Name    Key
	Ordinal int
	// Members holds the members resolved so far, in declaration
	// order. Mappers must treat it as read-only.
	Members []Member
}

// Mapper computes values for members declared without an initializer.
// Without a configured Mapper, bare members fail construction.
type Mapper interface {
	MemberValue(req MapRequest) (Value, error)
}

// MapperFunc adapts a function to the Mapper interface.
type MapperFunc func(req MapRequest) (Value, error)

func (f MapperFunc) MemberValue(req MapRequest) (Value, error) { return f(req) }

// AutoNumber is the numeric auto-increment policy: a bare first
// member gets 0, every later bare member gets the last numeric value
// plus one. Non-numeric members in between do not reset the counter.
type AutoNumber struct{}

func (AutoNumber) MemberValue(req MapRequest) (Value, error) {
	for i := len(req.Members) - 1; i >= 0; i-- {
		if n, ok := req.Members[i].Value.(Number); ok {
			return n + 1, nil
		}
	}
	return Number(0), nil
}
