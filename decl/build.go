package decl

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/partite-ai/enumdef/enum"
)

// Set is an ordered, immutable collection of built enums, indexed by
// binding name.
type Set struct {
	order []*enum.Object
	index map[string]*enum.Object
}

func (s *Set) Len() int { return len(s.order) }

// Get resolves a built enum by binding name.
func (s *Set) Get(name string) (*enum.Object, bool) {
	obj, ok := s.index[name]
	return obj, ok
}

// All iterates the built enums in document order.
func (s *Set) All() iter.Seq[*enum.Object] {
	return func(yield func(*enum.Object) bool) {
		for _, obj := range s.order {
			if !yield(obj) {
				return
			}
		}
	}
}

// Build compiles every declaration in the document. Binding names
// must be unique within one document; any enum failing construction
// fails the whole build.
func (d *Document) Build() (*Set, error) {
	set := &Set{index: make(map[string]*enum.Object, len(d.Enums))}
	for _, e := range d.Enums {
		if e.Name == "" {
			return nil, errors.New("enum declaration with no name")
		}
		if _, dup := set.index[e.Name]; dup {
			return nil, errors.Errorf("duplicate enum %s", e.Name)
		}
		obj, err := e.Build()
		if err != nil {
			return nil, err
		}
		set.index[e.Name] = obj
		set.order = append(set.order, obj)
	}
	return set, nil
}

// Build compiles a single declaration into an enum object.
func (e *EnumDecl) Build() (*enum.Object, error) {
	var opts []enum.Option
	switch e.Auto {
	case "":
	case "number":
		opts = append(opts, enum.WithAutoNumber())
	default:
		return nil, errors.Errorf("enum %s: unknown auto policy %q", e.Name, e.Auto)
	}

	b := enum.New(e.Name, opts...)
	for _, m := range e.Members {
		spec, err := m.spec(e.Name)
		if err != nil {
			return nil, err
		}
		b.AddSpec(spec)
	}
	return b.Build()
}

func (m *MemberDecl) spec(enumName string) (enum.MemberSpec, error) {
	if m.Name == "" {
		return enum.MemberSpec{}, errors.Errorf("enum %s: member with no name", enumName)
	}

	spec := enum.MemberSpec{Name: enum.Name(m.Name)}
	forms := 0
	if m.Number != nil {
		forms++
		spec.Value = enum.Number(*m.Number)
	}
	if m.String != nil {
		forms++
		spec.Value = enum.String(*m.String)
	}
	if m.Bool != nil {
		forms++
		spec.Value = enum.Bool(*m.Bool)
	}
	if m.BigInt != nil {
		forms++
		v, err := enum.ParseBigInt(*m.BigInt)
		if err != nil {
			return enum.MemberSpec{}, errors.Wrapf(err, "enum %s: member %s", enumName, m.Name)
		}
		spec.Value = v
	}
	if m.Symbol != nil {
		forms++
		spec.Value = enum.NewSymbol(*m.Symbol)
	}
	if m.Ref != nil {
		forms++
		spec.Init = enum.Ref(enum.Name(*m.Ref))
	}
	if forms > 1 {
		return enum.MemberSpec{}, errors.Errorf("enum %s: member %s: more than one value form", enumName, m.Name)
	}
	return spec, nil
}
