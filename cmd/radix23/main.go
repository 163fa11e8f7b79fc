package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/radix23"
)

const banner = `base-23 calculator
digits 0-9 are 0-9, A-M (or a-m) are 10-22
enter "number op number" with op one of + - * /
an empty line or "exit" quits
`

func main() {
	log.SetFlags(0)
	var (
		inname          string
		quiet, dec, exp bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.BoolVar(&quiet, "q", false, "don't print the banner or prompts")
	flag.BoolVar(&dec, "dec", false, "also print results in decimal")
	flag.BoolVar(&exp, "expr", false, "evaluate each line as a full expression")
	flag.Parse()

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	r := repl{
		out:   os.Stdout,
		quiet: quiet || in != os.Stdin,
		dec:   dec,
		expr:  exp,
	}
	if err := r.run(in); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (*os.File, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

// repl reads calculations line by line and writes their results.
type repl struct {
	out   io.Writer
	calc  radix23.Calculator
	quiet bool
	dec   bool
	expr  bool
}

// maxline is the longest input line accepted.
const maxline = 1 << 24

func (r *repl) run(in io.Reader) error {
	if !r.quiet {
		fmt.Fprint(r.out, banner)
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(nil, maxline)
	for {
		if !r.quiet {
			fmt.Fprint(r.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.EqualFold(line, "exit") {
			break
		}
		fmt.Fprintln(r.out, r.eval(line))
	}
	return sc.Err()
}

// eval computes the output for one line of input.
func (r *repl) eval(line string) string {
	if r.expr {
		v, err := radix23.EvalString(line)
		if err != nil {
			return "error: " + err.Error()
		}
		return "= " + r.format(v)
	}
	f := strings.Fields(line)
	if len(f) != 3 {
		return "expected number operator number, e.g. 10 + 1"
	}
	a, ok := radix23.TryParse(f[0])
	if !ok {
		return "invalid first number: " + f[0]
	}
	b, ok := radix23.TryParse(f[2])
	if !ok {
		return "invalid second number: " + f[2]
	}
	switch f[1] {
	case "+":
		return "= " + r.format(r.calc.Add(a, b))
	case "-":
		return "= " + r.format(r.calc.Subtract(a, b))
	case "*":
		return "= " + r.format(r.calc.Multiply(a, b))
	case "/":
		q, m, err := r.calc.DivideWithRemainder(a, b)
		if err != nil {
			return "error: " + err.Error()
		}
		if m.IsZero() {
			return "= " + r.format(q)
		}
		return "= " + r.format(q) + " remainder " + r.format(m)
	default:
		return "unsupported operator " + strconv.Quote(f[1]) + ", use +, -, * or /"
	}
}

// format renders a result, with its decimal value if requested.
func (r *repl) format(v radix23.Value) string {
	if !r.dec {
		return v.String()
	}
	return v.String() + " (" + v.Decimal().String() + ")"
}
