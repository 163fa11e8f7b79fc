package radix23

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// lnprec is the precision in bits of logarithms for digit count estimates.
const lnprec = 64

// ln23 is the natural logarithm of 23. It is never modified.
var ln23 = bigfloat.Log(new(big.Float).SetPrec(lnprec), new(big.Float).SetPrec(lnprec).SetInt64(23))

// estlen estimates the number of base-23 digits in a, which must be positive.
// The estimate may be off by one near powers of 23.
func estlen(a *big.Int) int {
	if a.BitLen() <= 4 {
		// Less than 16, so one digit.
		return 1
	}
	f := new(big.Float).SetPrec(lnprec).SetInt(a)
	bigfloat.Log(f, f)
	f.Quo(f, ln23)
	n, _ := f.Int64()
	return int(n) + 1
}

// Len returns the number of base-23 digits in v, not counting a sign. Zero
// has one digit.
func (v Value) Len() int {
	x := v.int()
	if x.Sign() == 0 {
		return 1
	}
	var a, p big.Int
	a.Abs(x)
	n := estlen(&a)
	// Correct the estimate so that 23^(n-1) <= a < 23^n.
	p.Exp(radix, big.NewInt(int64(n-1)), nil)
	for n > 1 && p.Cmp(&a) > 0 {
		p.Quo(&p, radix)
		n--
	}
	for {
		p.Mul(&p, radix)
		if p.Cmp(&a) > 0 {
			return n
		}
		n++
	}
}
