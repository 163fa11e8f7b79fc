package radix23

import (
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, op := range operstrs {
		if binop(op).op == nodeNone && unop(op).op == nodeNone {
			t.Errorf("no precedence for operator %q", op)
		}
	}
}

func TestTermPrecMatchesMultiplication(t *testing.T) {
	if termprec.prec != binop("*").prec {
		t.Errorf("termprec %d does not match multiplication %d", termprec.prec, binop("*").prec)
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"lower", "a", "(A)"},
		{"leading-zeros", "007F", "(7F)"},
		{"add", "1 + 2", "([1] + [2])"},
		{"prec", "1 + 2 * 3", "([1] + [(2) * (3)])"},
		{"parens", "(1 + 2) * 3", "([(1) + (2)] * [3])"},
		{"left-sub", "1 - 2 - 3", "([(1) - (2)] - [3])"},
		{"left-quo", "1 / 2 % 3", "([(1) / (2)] % [3])"},
		{"neg", "-a", "(-[A])"},
		{"plus", "+1", "(+[1])"},
		{"neg-mul", "-2 * 3", "([-(2)] * [3])"},
		{"rem-neg", "1 % -2", "([1] % [-(2)])"},
		{"neg-neg", "--1", "(-[-(1)])"},
		{"juxt", "2 3", "([2] * [3])"},
		{"juxt-bracket", "2(1 + 1)", "([2] * [(1) + (1)])"},
		{"juxt-quo", "100 / 2 A", "([100] / [(2) * (A)])"},
		{"juxt-first", "2 A / 3", "([(2) * (A)] / [3])"},
		{"brackets", "{[(7F)]}", "(7F)"},
		{"spaces", " \t1\n+\n2 ", "([1] + [2])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseExpr(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if s := a.String(); s != c.want {
				t.Errorf("%q parsed wrong:\n\twant %s\n\tgot  %s", c.src, c.want, s)
			}
		})
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
		res  []string
	}{
		{"empty", "", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`}},
		{"spaces", "  ", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`}},
		{"binary-eof", "1 +", new(EmptyExpressionError), []string{`(?i)\bno\b.*\bexpression\b`, `(?i)\bend\b`}},
		{"unary-eof", "1 * -", new(EmptyExpressionError), []string{`(?i)\bend\b`}},
		{"left", "(1", new(BracketError), []string{`(?i)\bbracket\b`, `\(`}},
		{"right", "1)", new(BracketError), []string{`(?i)\bbracket\b`, `\)`}},
		{"right-only", ")", new(BracketError), []string{`(?i)\bbracket\b`, `\)`}},
		{"mismatch", "(1]", new(BracketError), []string{`(?i)\bbracket\b`, `\(`, `]`}},
		{"mismatch-juxt", "2(1]", new(BracketError), []string{`(?i)\bbracket\b`, `\(`, `]`}},
		{"empty-brackets", "()", new(EmptyExpressionError), []string{`\)`}},
		{"op-paren", "(1*)", new(EmptyExpressionError), []string{`\)`}},
		{"unary-paren", "(+)", new(EmptyExpressionError), []string{`\)`}},
		{"nonunary", "*1", new(OperatorError), []string{`(?i)\bunary\b`, `(?i)\bop`, `\*`}},
		{"nonunary-rhs", "1 * / 2", new(OperatorError), []string{`(?i)\bunary\b`, `/`}},
		{"lexer", "1 + $", new(LexError), []string{`\$`}},
		{"digit", "1N + 1", new(LexError), []string{`(?i)\bnumber\b`, `1N`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseExpr(strings.NewReader(c.src))
			if a != nil {
				t.Errorf("%q parsed non-nil to %v", c.src, a.n)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			if err == nil {
				return
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestStopOn(t *testing.T) {
	src := strings.NewReader("1 + 2\nA\n  -1 *\n 3")
	for _, want := range []string{"([1] + [2])", "(A)", "([-(1)] * [3])"} {
		a, err := ParseExpr(src, StopOn('\n'))
		if err != nil {
			t.Fatalf("parsing %s: %v", want, err)
		}
		if s := a.String(); s != want {
			t.Errorf("want %s, got %s", want, s)
		}
	}
	if src.Len() != 0 {
		t.Errorf("%d bytes left over", src.Len())
	}
}

func TestStopOnPanics(t *testing.T) {
	for _, r := range []rune{',', ';', 'x', '+'} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("StopOn(%q) didn't panic", r)
				}
			}()
			StopOn(r)
		}()
	}
}
