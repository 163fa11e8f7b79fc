package radix23

// Calculator provides named arithmetic operations on Values. It has no state;
// the zero Calculator is ready to use.
type Calculator struct{}

// Add returns a + b.
func (Calculator) Add(a, b Value) Value {
	return a.Add(b)
}

// Subtract returns a - b.
func (Calculator) Subtract(a, b Value) Value {
	return a.Sub(b)
}

// Multiply returns a * b.
func (Calculator) Multiply(a, b Value) Value {
	return a.Mul(b)
}

// Divide returns a / b truncated toward zero. If b is zero, the error is a
// *DivisionByZeroError.
func (Calculator) Divide(a, b Value) (Value, error) {
	return a.Quo(b)
}

// DivideWithRemainder returns the quotient and remainder of a / b. If b is
// zero, the error is a *DivisionByZeroError.
func (Calculator) DivideWithRemainder(a, b Value) (q, r Value, err error) {
	return a.QuoRem(b)
}
