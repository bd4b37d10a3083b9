package enum

import (
	"fmt"
	"math/big"
	"strconv"
)

// Value is a member value drawn from the closed primitive domain.
// Exactly five concrete types implement it: Number, String, Bool,
// BigInt and *Symbol. Objects and functions are never values.
type Value interface {
	isValue()
}

type Number float64

func (Number) isValue() {}

type String string

func (String) isValue() {}

type Bool bool

func (Bool) isValue() {}

// BigInt is an immutable arbitrary-precision integer value. The zero
// BigInt is the integer 0.
type BigInt struct {
	i *big.Int
}

// NewBigInt copies i into an immutable value.
func NewBigInt(i *big.Int) BigInt {
	return BigInt{i: new(big.Int).Set(i)}
}

// ParseBigInt parses a base-10 integer literal.
func ParseBigInt(s string) (BigInt, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid bigint literal %q", s)
	}
	return BigInt{i: i}, nil
}

// Int returns a copy of the underlying integer.
func (b BigInt) Int() *big.Int {
	return new(big.Int).Set(b.big())
}

func (b BigInt) String() string {
	return b.big().String()
}

var bigZero = new(big.Int)

func (b BigInt) big() *big.Int {
	if b.i == nil {
		return bigZero
	}
	return b.i
}

func (BigInt) isValue() {}

// Symbol is an identity-bearing value and property key: two symbols
// are equal only if they are the same symbol, regardless of
// description. Create them with NewSymbol.
type Symbol struct {
	desc string
}

func NewSymbol(description string) *Symbol {
	return &Symbol{desc: description}
}

func (s *Symbol) Description() string { return s.desc }

func (s *Symbol) String() string { return "Symbol(" + s.desc + ")" }

func (*Symbol) isValue() {}

// Equal reports strict equality between two values. There is no
// cross-type coercion: Number(3) and the BigInt 3 are not equal, and
// a NaN Number is never equal to anything, itself included.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case BigInt:
		bv, ok := b.(BigInt)
		return ok && av.big().Cmp(bv.big()) == 0
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av == bv
	}
	return false
}

// Coerce converts a native Go value into the closed primitive domain.
// It accepts bools, strings, all integer and float widths, *big.Int,
// *Symbol and existing Values, and rejects everything else. This is
// the only conversion in the package; nothing coerces implicitly.
func Coerce(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case float64:
		return Number(t), nil
	case *big.Int:
		return NewBigInt(t), nil
	case nil:
		return nil, fmt.Errorf("nil is not a member value")
	default:
		return nil, fmt.Errorf("unsupported member value type %T", v)
	}
}

// Format renders a value for display: numbers bare, strings quoted,
// bigints with an n suffix.
func Format(v Value) string {
	switch t := v.(type) {
	case Number:
		return strconv.FormatFloat(float64(t), 'g', -1, 64)
	case String:
		return strconv.Quote(string(t))
	case Bool:
		return strconv.FormatBool(bool(t))
	case BigInt:
		return t.String() + "n"
	case *Symbol:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}
