// Package equation - single-variable linear equation solver.
//
// This file provides the canonical entry point:
//
//   - Solve: split the input on '=', reduce both sides via linform,
//     rearrange into xCoeff*x = constDiff, and classify the outcome.
package equation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lineq/linform"
)

// Solve parses and classifies one linear equation, applying any number
// of functional Options.
// Returns ErrMalformedEquation when the input does not contain exactly
// one '=', wrapped linform errors when a side cannot be reduced, or
// ErrOptionViolation for bad options.
func Solve(input string, opts ...Option) (Solution, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Solution{}, o.err
	}

	leftRaw, rightRaw, err := split(input)
	if err != nil {
		return Solution{}, err
	}

	lhs, err := linform.Parse(leftRaw, linform.WithVariable(o.Variable))
	if err != nil {
		return Solution{}, fmt.Errorf("equation: left side %q: %w", leftRaw, err)
	}
	rhs, err := linform.Parse(rightRaw, linform.WithVariable(o.Variable))
	if err != nil {
		return Solution{}, fmt.Errorf("equation: right side %q: %w", rightRaw, err)
	}

	return classify(lhs, rhs, o.Variable), nil
}

// split cuts the input into its two sides around the single '='.
func split(input string) (left, right string, err error) {
	first := strings.IndexByte(input, '=')
	if first < 0 {
		return "", "", fmt.Errorf("%w: none found in %q", ErrMalformedEquation, input)
	}
	if strings.IndexByte(input[first+1:], '=') >= 0 {
		return "", "", fmt.Errorf("%w: more than one found in %q", ErrMalformedEquation, input)
	}
	return input[:first], input[first+1:], nil
}

// classify rearranges lhs = rhs into xCoeff*x = constDiff and applies
// the three-way decision. No state machine beyond this sequence.
func classify(lhs, rhs linform.LinearForm, variable rune) Solution {
	xCoeff := lhs.Coefficient - rhs.Coefficient
	constDiff := rhs.Constant - lhs.Constant

	switch {
	case xCoeff == 0 && constDiff == 0:
		return Solution{Outcome: InfiniteSolutions, Variable: variable}
	case xCoeff == 0:
		return Solution{Outcome: NoSolution, Variable: variable}
	default:
		return Solution{Outcome: UniqueSolution, X: floorDiv(constDiff, xCoeff), Variable: variable}
	}
}

// floorDiv divides rounding toward negative infinity. Go's '/' truncates
// toward zero; the two differ for inexact quotients of mixed sign, so
// the quotient is adjusted down by one in that case.
func floorDiv(dividend, divisor int64) int64 {
	quotient := dividend / divisor
	if dividend%divisor != 0 && (dividend < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}
