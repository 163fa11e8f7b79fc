package radix23

import (
	"io"
	"strings"
)

// Eval evaluates the expression. If a division or remainder by zero occurs,
// the error is a *DivisionByZeroError.
func (e *Expr) Eval() (Value, error) {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() (Value, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeNeg:
		v, err := n.left.eval()
		if err != nil {
			return Value{}, err
		}
		return v.Neg(), nil
	case nodeNop:
		return n.left.eval()
	case nodeAdd, nodeSub, nodeMul, nodeQuo, nodeRem:
		l, err := n.left.eval()
		if err != nil {
			return Value{}, err
		}
		r, err := n.right.eval()
		if err != nil {
			return Value{}, err
		}
		switch n.kind {
		case nodeAdd:
			return l.Add(r), nil
		case nodeSub:
			return l.Sub(r), nil
		case nodeMul:
			return l.Mul(r), nil
		case nodeQuo:
			return l.Quo(r)
		default:
			return l.Rem(r)
		}
	default:
		panic("radix23: invalid AST node " + n.kind.String())
	}
}

// EvalExpr is a shortcut to parse an expression and return its result.
func EvalExpr(src io.RuneScanner, opts ...ParseOption) (Value, error) {
	a, err := ParseExpr(src, opts...)
	if err != nil {
		return Value{}, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (Value, error) {
	return EvalExpr(strings.NewReader(src))
}
