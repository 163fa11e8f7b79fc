package radix23

import "math/big"

// Add returns v + w.
func (v Value) Add(w Value) Value {
	return Value{x: new(big.Int).Add(v.int(), w.int())}
}

// Sub returns v - w.
func (v Value) Sub(w Value) Value {
	return Value{x: new(big.Int).Sub(v.int(), w.int())}
}

// Mul returns v * w.
func (v Value) Mul(w Value) Value {
	return Value{x: new(big.Int).Mul(v.int(), w.int())}
}

// Neg returns -v.
func (v Value) Neg() Value {
	return Value{x: new(big.Int).Neg(v.int())}
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value{x: new(big.Int).Abs(v.int())}
}

// Quo returns v / w truncated toward zero. If w is zero, the error is a
// *DivisionByZeroError.
func (v Value) Quo(w Value) (Value, error) {
	if err := checkdiv("/", w); err != nil {
		return Value{}, err
	}
	return Value{x: new(big.Int).Quo(v.int(), w.int())}, nil
}

// Rem returns the remainder of v / w, which has the sign of v. If w is zero,
// the error is a *DivisionByZeroError.
func (v Value) Rem(w Value) (Value, error) {
	if err := checkdiv("%", w); err != nil {
		return Value{}, err
	}
	return Value{x: new(big.Int).Rem(v.int(), w.int())}, nil
}

// QuoRem returns the quotient and remainder of v / w such that q*w + r == v,
// with q truncated toward zero and r having the sign of v. If w is zero, the
// error is a *DivisionByZeroError.
//
// Note that this is not Euclidean division as with big.Int.DivMod.
func (v Value) QuoRem(w Value) (q, r Value, err error) {
	if err := checkdiv("divrem", w); err != nil {
		return Value{}, Value{}, err
	}
	qx, rx := new(big.Int).QuoRem(v.int(), w.int(), new(big.Int))
	return Value{x: qx}, Value{x: rx}, nil
}

// checkdiv returns an error if w is zero. op names the division operation.
func checkdiv(op string, w Value) error {
	if w.IsZero() {
		return &DivisionByZeroError{Op: op}
	}
	return nil
}
