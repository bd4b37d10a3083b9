package enum

import (
	"fmt"
	"iter"
	"strings"
)

// Object is a finished enum: an immutable ordered mapping from member
// name to primitive value. Iteration order is declaration order,
// independent of any key sort order. Objects are safe for concurrent
// use; every accessor returns copies, never internal state.
type Object struct {
	name    string
	members []Member
	index   map[Key]int
}

// freeze validates and closes a member list. It runs after transforms
// so rewritten lists face the same rules as declared ones.
func freeze(name string, members []Member) (*Object, error) {
	o := &Object{
		name:    name,
		members: make([]Member, len(members)),
		index:   make(map[Key]int, len(members)),
	}
	for i, m := range members {
		if m.Name == nil {
			return nil, &InvalidMemberValueError{Enum: name, Err: fmt.Errorf("member %d has no name", i)}
		}
		if _, dup := o.index[m.Name]; dup {
			return nil, &DuplicateMemberError{Enum: name, Name: m.Name}
		}
		if m.Value == nil {
			return nil, &InvalidMemberValueError{Enum: name, Name: m.Name, Err: fmt.Errorf("member has no value")}
		}
		o.index[m.Name] = i
		o.members[i] = m
	}
	return o, nil
}

// Name returns the enum's binding name, which doubles as its type
// tag: two enums never share members by construction, only by name.
func (o *Object) Name() string { return o.name }

func (o *Object) Len() int { return len(o.members) }

// All iterates the members as (name, value) pairs in declaration
// order.
func (o *Object) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for _, m := range o.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Members returns a copy of the member list in declaration order.
func (o *Object) Members() []Member {
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}

// Value resolves a member by exact name.
func (o *Object) Value(name Key) (Value, bool) {
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

func (o *Object) Has(name Key) bool {
	_, ok := o.index[name]
	return ok
}

// KeyOf reverse-maps a value to the first member, in declaration
// order, whose value is strictly equal to it. Later members sharing
// the value lose the tie.
func (o *Object) KeyOf(value Value) (Key, bool) {
	for _, m := range o.members {
		if Equal(m.Value, value) {
			return m.Name, true
		}
	}
	return nil, false
}

func (o *Object) HasValue(value Value) bool {
	_, ok := o.KeyOf(value)
	return ok
}

func (o *Object) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "enum %s {", o.name)
	for i, m := range o.members {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, " %s: %s", m.Name, Format(m.Value))
	}
	sb.WriteString(" }")
	return sb.String()
}
