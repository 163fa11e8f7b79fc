package radix23

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Decimal returns v as a decimal number.
func (v Value) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(v.Int(), 0)
}

// FromDecimal converts an integral decimal to a Value. If d has a fractional
// part, the error is a *FormatError positioned at the decimal point of
// d.String().
func FromDecimal(d decimal.Decimal) (Value, error) {
	x := d.BigInt()
	if !d.Equal(decimal.NewFromBigInt(x, 0)) {
		s := d.String()
		k := strings.IndexByte(s, '.')
		if k < 0 {
			k = len(s) - 1
		}
		return Value{}, &FormatError{Col: utf8.RuneCountInString(s[:k]) + 1, Text: s[:k+1]}
	}
	return Value{x: x}, nil
}
