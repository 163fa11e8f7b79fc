package radix23

import (
	"errors"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Digits contains the base-23 digits in order of value. Formatting always
// uses these; parsing also accepts the lower case letters.
const Digits = "0123456789ABCDEFGHIJKLM"

// radix is the base as a big.Int. It is never modified.
var radix = big.NewInt(int64(len(Digits)))

// digitval maps each byte to its digit value, or -1 if the byte is not a
// digit. It is built from Digits once and never modified.
var digitval = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Digits); i++ {
		c := Digits[i]
		t[c] = int8(i)
		if 'A' <= c && c <= 'Z' {
			t[c-'A'+'a'] = int8(i)
		}
	}
	return t
}()

// digit gets the value of r as a base-23 digit, or -1 if r is not a digit.
func digit(r rune) int {
	if r < 0 || r >= utf8.RuneSelf {
		return -1
	}
	return int(digitval[r])
}

// Parse reads a base-23 number from src up to EOF. The number is an optional
// leading '-' followed by at least one digit. If src is nil, the error is a
// *NullInputError. If the input is not a number, the error is a *FormatError.
// Errors from src other than io.EOF are returned as-is.
func Parse(src io.RuneReader) (Value, error) {
	if src == nil {
		return Value{}, &NullInputError{}
	}
	var (
		x, d     big.Int
		buf      strings.Builder
		col      int
		neg, dig bool
	)
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Value{}, err
		}
		col++
		buf.WriteRune(r)
		if r == '-' && col == 1 {
			neg = true
			continue
		}
		k := digit(r)
		if k < 0 {
			return Value{}, &FormatError{Col: col, Text: buf.String()}
		}
		x.Mul(&x, radix)
		x.Add(&x, d.SetInt64(int64(k)))
		dig = true
	}
	if !dig {
		return Value{}, &FormatError{Col: col + 1, Text: buf.String()}
	}
	if neg {
		x.Neg(&x)
	}
	return Value{x: &x}, nil
}

// ParseString is a shortcut to parse a number from a string.
func ParseString(s string) (Value, error) {
	return Parse(strings.NewReader(s))
}

// TryParse parses a number from a string and reports whether it succeeded.
// On failure, the result is the zero Value.
func TryParse(s string) (Value, bool) {
	v, err := ParseString(s)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// String formats v in base 23 with upper case letters.
func (v Value) String() string {
	x := v.int()
	if x.Sign() == 0 {
		return Digits[:1]
	}
	var q, m big.Int
	q.Abs(x)
	// Collect digits least significant first, then reverse.
	b := make([]byte, 0, estlen(&q)+2)
	for q.Sign() != 0 {
		q.QuoRem(&q, radix, &m)
		b = append(b, Digits[m.Int64()])
	}
	if x.Sign() < 0 {
		b = append(b, '-')
	}
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
