package enum

import "fmt"

// Key is a member name: a plain string Name or a *Symbol. Keys are
// comparable and usable as map keys; two Names are equal when their
// strings are, two symbols only when they are the same symbol.
type Key interface {
	fmt.Stringer
	isKey()
}

// Name is a string property key.
type Name string

func (Name) isKey() {}

func (n Name) String() string { return string(n) }

func (*Symbol) isKey() {}

// ToKey canonicalizes a native Go value into a property key. Strings
// become Names; existing keys pass through unchanged.
func ToKey(v any) (Key, error) {
	switch t := v.(type) {
	case Key:
		return t, nil
	case string:
		return Name(t), nil
	default:
		return nil, fmt.Errorf("unsupported property key type %T", v)
	}
}
