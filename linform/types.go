// Package linform provides tunable options and error definitions
// for parsing one side of a linear equation into a LinearForm.
package linform

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// DefaultVariable is the variable letter assumed when no option overrides it.
const DefaultVariable = 'x'

// Sentinel errors for expression parsing.
var (
	// ErrEmptyExpression is returned when the input is empty after
	// whitespace removal.
	ErrEmptyExpression = errors.New("linform: empty expression")

	// ErrMalformedExpression is returned when a term body cannot be
	// tokenized into a valid signed integer or variable term.
	ErrMalformedExpression = errors.New("linform: malformed expression")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("linform: invalid option supplied")
)

// Option configures parsing behavior via functional arguments.
// If an Option is invalid (e.g. a non-letter variable), it is recorded
// internally and surfaced as ErrOptionViolation when Parse is invoked.
type Option func(*ParseOptions)

// ParseOptions holds parameters customizing expression parsing.
type ParseOptions struct {
	// Variable is the letter denoting the unknown, 'x' by default.
	Variable rune

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a ParseOptions with sane defaults:
//   - variable letter 'x'
//   - error channel clear.
func DefaultOptions() ParseOptions {
	return ParseOptions{
		Variable: DefaultVariable,
		err:      nil,
	}
}

// WithVariable sets the letter denoting the unknown.
//
//	unicode letter: accepted
//	anything else (digit, sign, punctuation): invalid option → ErrOptionViolation
func WithVariable(r rune) Option {
	return func(o *ParseOptions) {
		if !unicode.IsLetter(r) {
			o.err = fmt.Errorf("%w: variable %q is not a letter", ErrOptionViolation, r)
			return
		}
		o.Variable = r
	}
}

// Term is one signed unit of an expression, contributing either to the
// variable's coefficient or to the constant.
type Term struct {
	// Sign is +1 or -1.
	Sign int

	// Variable reports whether the term carries the variable letter.
	Variable bool

	// Magnitude is the non-negative size of the term; a bare variable
	// has implicit magnitude 1.
	Magnitude int64
}

// Value returns the signed contribution of the term.
func (t Term) Value() int64 {
	return int64(t.Sign) * t.Magnitude
}

// LinearForm is the reduced result of parsing one side of an equation:
//   - Coefficient: the algebraic sum of all variable-term contributions.
//   - Constant:    the algebraic sum of all constant-term contributions.
//
// Both may be zero or negative.
type LinearForm struct {
	Coefficient int64
	Constant    int64
}

// Render writes the form in canonical notation using the given variable
// letter: "2x+3", "-x", "x-4", or "0" for the zero form.
func (f LinearForm) Render(variable rune) string {
	if f.Coefficient == 0 {
		return strconv.FormatInt(f.Constant, 10)
	}

	var out string
	switch f.Coefficient {
	case 1:
		out = string(variable)
	case -1:
		out = "-" + string(variable)
	default:
		out = strconv.FormatInt(f.Coefficient, 10) + string(variable)
	}
	switch {
	case f.Constant > 0:
		out += "+" + strconv.FormatInt(f.Constant, 10)
	case f.Constant < 0:
		out += strconv.FormatInt(f.Constant, 10)
	}
	return out
}

// String renders the form with the default variable letter.
func (f LinearForm) String() string {
	return f.Render(DefaultVariable)
}
