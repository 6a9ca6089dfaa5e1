// Package equation provides tunable options, result types and error
// definitions for linear equation solving.
package equation

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/katalvlaran/lineq/linform"
)

// Sentinel errors for equation solving.
var (
	// ErrMalformedEquation is returned when the input does not contain
	// exactly one '=' character.
	ErrMalformedEquation = errors.New("equation: input must contain exactly one '='")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("equation: invalid option supplied")
)

// Option configures solving behavior via functional arguments.
// If an Option is invalid (e.g. a non-letter variable), it is recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*SolveOptions)

// SolveOptions holds parameters customizing equation solving.
type SolveOptions struct {
	// Variable is the letter denoting the unknown, 'x' by default.
	Variable rune

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SolveOptions with sane defaults:
//   - variable letter 'x'
//   - error channel clear.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		Variable: linform.DefaultVariable,
		err:      nil,
	}
}

// WithVariable sets the letter denoting the unknown on both sides.
//
//	unicode letter: accepted
//	anything else: invalid option → ErrOptionViolation
func WithVariable(r rune) Option {
	return func(o *SolveOptions) {
		if !unicode.IsLetter(r) {
			o.err = fmt.Errorf("%w: variable %q is not a letter", ErrOptionViolation, r)
			return
		}
		o.Variable = r
	}
}

// Outcome is the classification of a solved equation.
type Outcome int

const (
	// UniqueSolution marks an equation with exactly one integer root.
	UniqueSolution Outcome = iota

	// NoSolution marks an inconsistent equation such as "x+1=x+2".
	NoSolution

	// InfiniteSolutions marks an identity such as "3x-2=3x-2".
	InfiniteSolutions
)

// String names the outcome kind.
func (o Outcome) String() string {
	switch o {
	case UniqueSolution:
		return "UniqueSolution"
	case NoSolution:
		return "NoSolution"
	case InfiniteSolutions:
		return "InfiniteSolutions"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Solution is the outcome of solving one equation:
//   - Outcome:  which of the three classes the equation falls into.
//   - X:        the root; meaningful only when Outcome is UniqueSolution.
//   - Variable: the letter used for rendering.
type Solution struct {
	Outcome  Outcome
	X        int64
	Variable rune
}

// String renders the solution in the canonical reporting format:
// "x=<integer>", "No solution", or "Infinite solutions".
func (s Solution) String() string {
	switch s.Outcome {
	case NoSolution:
		return "No solution"
	case InfiniteSolutions:
		return "Infinite solutions"
	default:
		v := s.Variable
		if v == 0 {
			v = linform.DefaultVariable
		}
		return string(v) + "=" + strconv.FormatInt(s.X, 10)
	}
}
