// Package enum builds immutable, ordered, closed enum objects from
// member declarations. Construction is a synchronous left-to-right
// fold over the declared members; the finished Object never changes.
package enum

import "fmt"

// Initializer computes a member value against the bindings of the
// members declared before it.
type Initializer func(Scope) (Value, error)

// Scope is the environment an Initializer evaluates in: the values of
// all previously processed members of the same enum.
type Scope interface {
	// Lookup resolves a member declared earlier in the same body.
	// Members declared later are not visible.
	Lookup(name Key) (Value, bool)
	// EnumName is the binding name of the enum under construction. A
	// member sharing that name shadows it inside the body.
	EnumName() string
}

// Ref returns an Initializer that resolves an earlier member by name.
// Referencing a member declared later, or not at all, fails
// construction.
func Ref(name Key) Initializer {
	return func(s Scope) (Value, error) {
		if v, ok := s.Lookup(name); ok {
			return v, nil
		}
		return nil, fmt.Errorf("reference to undeclared or later member %s", name)
	}
}

// Transform rewrites the resolved member list before it is frozen.
// The output is validated again: names stay unique, every member
// keeps a value.
type Transform func([]Member) ([]Member, error)

// Option configures a Builder.
type Option func(*Builder)

// WithMapper installs an auto-initialization policy for bare members.
func WithMapper(m Mapper) Option {
	return func(b *Builder) { b.mapper = m }
}

// WithAutoNumber installs the numeric auto-increment policy.
func WithAutoNumber() Option {
	return WithMapper(AutoNumber{})
}

// WithTransform appends a pre-freeze transform. Transforms run in the
// order they were added.
func WithTransform(t Transform) Option {
	return func(b *Builder) { b.transforms = append(b.transforms, t) }
}

// Builder accumulates member specifications and evaluates them into a
// finished Object. Use New; the zero Builder has no name.
type Builder struct {
	name       string
	specs      []MemberSpec
	mapper     Mapper
	transforms []Transform
}

// New creates a builder for an enum with the given binding name.
func New(name string, opts ...Option) *Builder {
	b := &Builder{name: name}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends a member with an explicit value.
func (b *Builder) Add(name Key, value Value) *Builder {
	b.specs = append(b.specs, MemberSpec{Name: name, Value: value})
	return b
}

// AddInit appends a member whose value init computes at build time.
func (b *Builder) AddInit(name Key, init Initializer) *Builder {
	b.specs = append(b.specs, MemberSpec{Name: name, Init: init})
	return b
}

// AddAuto appends a bare member; its value comes from the configured
// auto-initialization policy.
func (b *Builder) AddAuto(name Key) *Builder {
	b.specs = append(b.specs, MemberSpec{Name: name})
	return b
}

// AddSpec appends an already-formed member specification.
func (b *Builder) AddSpec(spec MemberSpec) *Builder {
	b.specs = append(b.specs, spec)
	return b
}

// Build evaluates the accumulated specifications left to right and
// returns the frozen enum object. Construction is all or nothing: on
// any failure no partial object escapes, and rebuilding from the same
// specifications fails the same way.
func (b *Builder) Build() (*Object, error) {
	scope := &buildScope{
		enumName: b.name,
		index:    make(map[Key]int, len(b.specs)),
	}
	for _, spec := range b.specs {
		if spec.Name == nil {
			return nil, &InvalidMemberValueError{Enum: b.name, Err: fmt.Errorf("member with no name")}
		}
		if _, dup := scope.index[spec.Name]; dup {
			return nil, &DuplicateMemberError{Enum: b.name, Name: spec.Name}
		}
		value, err := b.memberValue(scope, spec)
		if err != nil {
			return nil, err
		}
		scope.index[spec.Name] = len(scope.members)
		scope.members = append(scope.members, Member{Name: spec.Name, Value: value})
	}

	members := scope.members
	for _, transform := range b.transforms {
		var err error
		members, err = transform(members)
		if err != nil {
			return nil, fmt.Errorf("enum %s: transform: %w", b.name, err)
		}
	}

	return freeze(b.name, members)
}

func (b *Builder) memberValue(scope *buildScope, spec MemberSpec) (Value, error) {
	switch {
	case spec.Value != nil && spec.Init != nil:
		return nil, &InvalidMemberValueError{
			Enum: b.name, Name: spec.Name,
			Err: fmt.Errorf("both explicit value and initializer set"),
		}
	case spec.Value != nil:
		return spec.Value, nil
	case spec.Init != nil:
		v, err := spec.Init(scope)
		if err != nil {
			return nil, &InvalidMemberValueError{Enum: b.name, Name: spec.Name, Err: err}
		}
		if v == nil {
			return nil, &InvalidMemberValueError{
				Enum: b.name, Name: spec.Name,
				Err: fmt.Errorf("initializer produced no value"),
			}
		}
		return v, nil
	default:
		if b.mapper == nil {
			return nil, &MapperInvocationError{
				Enum: b.name, Name: spec.Name,
				Err: fmt.Errorf("no auto-initialization policy configured"),
			}
		}
		v, err := b.mapper.MemberValue(MapRequest{
			Enum:    b.name,
			Name:    spec.Name,
			Ordinal: len(scope.members),
			Members: scope.members,
		})
		if err != nil {
			return nil, &MapperInvocationError{Enum: b.name, Name: spec.Name, Err: err}
		}
		if v == nil {
			return nil, &MapperInvocationError{
				Enum: b.name, Name: spec.Name,
				Err: fmt.Errorf("policy produced no value"),
			}
		}
		return v, nil
	}
}

// buildScope is the sequential binding environment of a single Build
// pass. Lookup sees only members already appended, so forward
// references cannot resolve.
type buildScope struct {
	enumName string
	members  []Member
	index    map[Key]int
}

func (s *buildScope) Lookup(name Key) (Value, bool) {
	if i, ok := s.index[name]; ok {
		return s.members[i].Value, true
	}
	return nil, false
}

func (s *buildScope) EnumName() string { return s.enumName }
