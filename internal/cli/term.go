package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
	"marketplace/internal/validate"
)

// errBack is returned by a prompt when the user typed a back token.
var errBack = errors.New("back")

// Term reads answers line by line and writes prompts and results.
type Term struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerm(in io.Reader, out io.Writer) *Term {
	return &Term{in: bufio.NewScanner(in), out: out}
}

func (t *Term) Printf(format string, args ...any) { fmt.Fprintf(t.out, format, args...) }

func (t *Term) Println(args ...any) { fmt.Fprintln(t.out, args...) }

// line prints prompt and returns the next trimmed input line, or io.EOF.
func (t *Term) line(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

// Choose reads a menu choice. Back tokens are not special here.
func (t *Term) Choose() (string, error) { return t.line("Choose: ") }

func (t *Term) Text(label string, allowEmpty bool) (string, error) {
	for {
		s, err := t.line(label + " (type 'cd ..' to go back): ")
		if err != nil {
			return "", err
		}
		if validate.Back(s) {
			return "", errBack
		}
		if s != "" || allowEmpty {
			return s, nil
		}
		t.Println("Input cannot be empty.")
	}
}

func (t *Term) Category(label string) (domain.Category, error) {
	for {
		s, err := t.Text(label, false)
		if err != nil {
			return "", err
		}
		if c, ok := validate.Category(s); ok {
			return c, nil
		}
		t.Println("Unknown category. Available categories are:")
		t.Println(domain.CategoryNames())
	}
}

func (t *Term) Condition(label string) (domain.Condition, error) {
	for {
		s, err := t.Text(label, false)
		if err != nil {
			return "", err
		}
		if c, ok := validate.Condition(s); ok {
			return c, nil
		}
		t.Println("Unknown condition. Choose from:", domain.ConditionNames())
	}
}

// Price accepts an empty answer as def.
func (t *Term) Price(label string, def decimal.Decimal) (decimal.Decimal, error) {
	for {
		s, err := t.line(fmt.Sprintf("%s [default %s] (Enter=accept, 'cd ..'=back): ", label, def.StringFixed(2)))
		if err != nil {
			return decimal.Zero, err
		}
		if validate.Back(s) {
			return decimal.Zero, errBack
		}
		if s == "" {
			return def, nil
		}
		p, ok := validate.Price(s)
		if !ok || !p.Round(2).IsPositive() {
			t.Println("Please enter a valid price of at least 0.01.")
			continue
		}
		return p, nil
	}
}

// Int reads a whole number no smaller than min.
func (t *Term) Int(label string, min int) (int, error) {
	for {
		s, err := t.line(label + " ('cd ..' to go back): ")
		if err != nil {
			return 0, err
		}
		if validate.Back(s) {
			return 0, errBack
		}
		if n, ok := validate.Qty(s, min, 0); ok {
			return n, nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			t.Println("Please enter a valid integer.")
		} else {
			t.Printf("Value must be >= %d\n", min)
		}
	}
}
