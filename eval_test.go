package radix23_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/radix23"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    string
	}{
		{"num", "1M", "1M"},
		{"neg", "-M", "-M"},
		{"plus", "+A", "A"},
		{"add", "10 + 1", "11"},
		{"sub", "M - A", "C"},
		{"mul", "M * 2", "1L"},
		{"quo", "100 / 10", "10"},
		{"rem", "100 % 3", "1"},
		{"rem-neg", "-1M % 2", "-1"},
		{"quo-neg", "-1M / 2", "-M"},
		{"prec", "1 + 2 * 3", "7"},
		{"parens", "(1 + 2) * 3", "9"},
		{"left-sub", "10 - 1 - 1", "L"},
		{"left-quo", "100 / 10 / 10", "1"},
		{"juxt", "2 3 4", "11"},
		{"juxt-bracket", "[2]{3}", "6"},
		{"lower", "a * B", "4I"},
		{"neg-neg", "--1", "1"},
		{"big", "MMMMMMMMMMMMMMMMMMMM + 1", "100000000000000000000"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := radix23.ParseExpr(strings.NewReader(c.src))
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			r, err := a.Eval()
			if err != nil {
				t.Fatal("evaluation error:", err)
			}
			if s := r.String(); s != c.r {
				t.Errorf("wrong result from %q: want %s, got %s", c.src, c.r, s)
			}
			q, err := radix23.EvalString(c.src)
			if err != nil || !q.Equal(r) {
				t.Errorf("EvalString(%q) gave %v, %v; Eval gave %v", c.src, q, err, r)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		op   string
	}{
		{"quo", "1 / 0", "/"},
		{"rem", "1 % 0", "%"},
		{"quo-expr", "1 / (A - a)", "/"},
		{"nested", "1 + 2 * (3 % (1 - 1))", "%"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := radix23.EvalString(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error, result %v", c.src, r)
			}
			var d *radix23.DivisionByZeroError
			if !errors.As(err, &d) {
				t.Fatalf("%#v is not *radix23.DivisionByZeroError", err)
			}
			if d.Op != c.op {
				t.Errorf("wrong op in %v: want %q", err, c.op)
			}
		})
	}
}

func TestEvalExprParseError(t *testing.T) {
	_, err := radix23.EvalExpr(strings.NewReader("1 +"))
	var ie radix23.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("%#v is not an InputError", err)
	}
	if ie.Pos() != 4 {
		t.Errorf("wrong position %d", ie.Pos())
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			radix23.ParseExpr(strings.NewReader("(1M + 2) * 3 / (4 - 5) % 6"))
		}
	})
	b.Run("eval", func(b *testing.B) {
		b.ReportAllocs()
		a, err := radix23.ParseExpr(strings.NewReader("(1M + 2) * 3 / (4 - 5) % 6"))
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			a.Eval()
		}
	})
}
