package radix23

import (
	"math/big"
)

// Value is an integer of arbitrary size. The zero Value is 0.
//
// A Value never changes once created, so it is safe to use concurrently.
// Values hold a pointer, so they must be compared with Equal or Cmp rather
// than ==.
type Value struct {
	// x is the integer. It is never modified after the Value is created. A
	// nil x means zero.
	x *big.Int
}

// zero is the integer for Values with nil x. It is never modified.
var zero = new(big.Int)

// New creates a Value equal to x. Later changes to x do not affect the
// Value. A nil x gives zero.
func New(x *big.Int) Value {
	if x == nil {
		return Value{}
	}
	return Value{x: new(big.Int).Set(x)}
}

// NewInt64 creates a Value equal to x.
func NewInt64(x int64) Value {
	return Value{x: big.NewInt(x)}
}

// int gets v's integer. The result must not be modified.
func (v Value) int() *big.Int {
	if v.x == nil {
		return zero
	}
	return v.x
}

// Int returns a copy of v's integer.
func (v Value) Int() *big.Int {
	return new(big.Int).Set(v.int())
}

// Int64 returns v as an int64 and whether it fits in one.
func (v Value) Int64() (int64, bool) {
	x := v.int()
	return x.Int64(), x.IsInt64()
}

// Sign returns -1, 0, or 1 as v is negative, zero, or positive.
func (v Value) Sign() int {
	return v.int().Sign()
}

// IsZero returns whether v is zero.
func (v Value) IsZero() bool {
	return v.Sign() == 0
}

// Cmp compares v and w, returning -1 if v < w, 0 if they are equal, and 1 if
// v > w.
func (v Value) Cmp(w Value) int {
	return v.int().Cmp(w.int())
}

// Equal returns whether v and w are the same integer, regardless of how
// either was created.
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// Key returns a string usable as a map key for v. Keys of two Values are
// equal exactly when the Values are Equal.
func (v Value) Key() string {
	return v.int().String()
}

// MarshalText implements encoding.TextMarshaler. The text is the same as
// String.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as Parse. On error, v is unchanged.
func (v *Value) UnmarshalText(text []byte) error {
	if text == nil {
		return &NullInputError{}
	}
	r, err := ParseString(string(text))
	if err != nil {
		return err
	}
	*v = r
	return nil
}
