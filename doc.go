// Package radix23 implements arbitrary-precision integer arithmetic on numbers
// written in base 23.
//
// Digits 0 through 9 have their usual values and the letters A through M
// stand for 10 through 22. Letters are accepted in either case and always
// formatted in upper case. A Value is only ever an integer; the base-23 text
// is an encoding, so "a" and "A" parse to equal values.
//
// Values are immutable and safe to share between goroutines. Every operation
// returns a new Value.
//
// Besides single numbers, the package parses and evaluates infix expressions
// like "1M / (2 + 1)" with ParseExpr and EvalString.
//
package radix23
