package radix23

import (
	"strconv"
	"unicode/utf8"
)

// NullInputError is an error indicating that there was no input to parse at
// all, as opposed to input that is empty. It implements InputError.
type NullInputError struct{}

func (err *NullInputError) Error() string {
	return "no input to parse"
}

func (err *NullInputError) Pos() int {
	return 0
}

// FormatError is an error indicating text that is not a base-23 number. It
// implements InputError.
type FormatError struct {
	// Col is the position of the first character that is not a digit, or one
	// past the end of the input if the input has no digits.
	Col int
	// Text is the input up to and including the invalid character.
	Text string
}

func (err *FormatError) Error() string {
	if utf8.RuneCountInString(err.Text) < err.Col {
		if err.Text == "" {
			return errpos(err.Col, "empty number")
		}
		return errpos(err.Col, "no digits in number "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid base-23 digit in "+strconv.Quote(err.Text))
}

func (err *FormatError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division, remainder, or
// division with remainder by zero.
type DivisionByZeroError struct {
	// Op names the operation: "/", "%", or "divrem".
	Op string
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == "" {
		return "division by zero"
	}
	return "division by zero in " + err.Op
}

// OperatorError is an error indicating an operator token that is not
// understood by the expression parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in an expression.
// It implements InputError.
type BracketError struct {
	// Col is the position of the bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression. It
// implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*NullInputError)(nil)
	_ InputError = (*FormatError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
