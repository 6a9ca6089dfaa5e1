// Package linform implements the expression side of the linear-equation
// pipeline: a single left-to-right scan reducing "2x+3-x" to its
// (coefficient, constant) pair.
package linform

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner encapsulates mutable parse state over a normalized expression.
type scanner struct {
	input    string // normalized: no whitespace, explicit leading sign
	pos      int    // byte offset of the next unread character
	variable rune
	terms    []Term
}

// Parse reduces one side of an equation to its LinearForm, applying any
// number of functional Options.
// Returns ErrEmptyExpression for blank input, ErrMalformedExpression for
// bodies that cannot be tokenized, or ErrOptionViolation for bad options.
func Parse(expr string, opts ...Option) (LinearForm, error) {
	terms, err := Terms(expr, opts...)
	if err != nil {
		return LinearForm{}, err
	}

	// Reduce: order is irrelevant, addition commutes.
	var form LinearForm
	for _, t := range terms {
		if t.Variable {
			form.Coefficient += t.Value()
		} else {
			form.Constant += t.Value()
		}
	}
	return form, nil
}

// Terms tokenizes one side of an equation into its signed terms,
// applying any number of functional Options.
// The scan is strict: an empty term body (two adjacent signs, or a
// trailing sign) is a malformed expression, as is any body that is not
// digits or a digits-then-variable run.
func Terms(expr string, opts ...Option) ([]Term, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	normalized := normalize(expr)
	if normalized == "" {
		return nil, ErrEmptyExpression
	}

	s := &scanner{input: normalized, variable: o.Variable}
	return s.run()
}

// normalize strips all whitespace and guarantees an explicit leading
// sign, producing a fresh string; the input is never mutated.
func normalize(expr string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
	if stripped == "" {
		return ""
	}
	if stripped[0] != '+' && stripped[0] != '-' {
		return "+" + stripped
	}
	return stripped
}

// run scans sign/body pairs until the input is exhausted.
func (s *scanner) run() ([]Term, error) {
	for s.pos < len(s.input) {
		sign := s.readSign()
		body := s.readBody()
		term, err := s.classify(sign, body)
		if err != nil {
			return nil, err
		}
		s.terms = append(s.terms, term)
	}
	return s.terms, nil
}

// readSign consumes the sign character at the cursor. Normalization
// guarantees the scan is always positioned on '+' or '-' here.
func (s *scanner) readSign() int {
	sign := +1
	if s.input[s.pos] == '-' {
		sign = -1
	}
	s.pos++
	return sign
}

// readBody consumes the maximal run of characters that are neither '+'
// nor '-'. The run is empty when two signs are adjacent.
func (s *scanner) readBody() string {
	start := s.pos
	for s.pos < len(s.input) && s.input[s.pos] != '+' && s.input[s.pos] != '-' {
		s.pos++
	}
	return s.input[start:s.pos]
}

// classify turns a sign/body pair into a Term. A body holding the
// variable letter must be a digits-then-variable run; any other body
// must be plain digits.
func (s *scanner) classify(sign int, body string) (Term, error) {
	if body == "" {
		return Term{}, fmt.Errorf("%w: missing term before offset %d in %q", ErrMalformedExpression, s.pos, s.input)
	}

	idx := strings.IndexRune(body, s.variable)
	if idx < 0 {
		magnitude, err := parseMagnitude(body)
		if err != nil {
			return Term{}, fmt.Errorf("%w: constant term %q is not an integer", ErrMalformedExpression, body)
		}
		return Term{Sign: sign, Magnitude: magnitude}, nil
	}

	// The variable must close the term; a trailing first occurrence
	// also rules out a second one.
	if idx+utf8.RuneLen(s.variable) != len(body) {
		return Term{}, fmt.Errorf("%w: variable %q must end term %q", ErrMalformedExpression, s.variable, body)
	}
	prefix := body[:idx]
	if prefix == "" {
		// bare variable, implicit magnitude 1
		return Term{Sign: sign, Variable: true, Magnitude: 1}, nil
	}
	magnitude, err := parseMagnitude(prefix)
	if err != nil {
		return Term{}, fmt.Errorf("%w: coefficient %q in term %q is not an integer", ErrMalformedExpression, prefix, body)
	}
	return Term{Sign: sign, Variable: true, Magnitude: magnitude}, nil
}

// parseMagnitude reads a digits-only magnitude. Signs never reach here:
// the scanner breaks bodies on '+' and '-'.
func parseMagnitude(digits string) (int64, error) {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseInt(digits, 10, 64)
}
