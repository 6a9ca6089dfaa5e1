// Package equation solves single-variable linear equations of the form
// "expr = expr", classifying each into a unique solution, no solution,
// or infinitely many.
//
// What
//
//   - Split the input on its single '=' into two sides.
//   - Reduce each side with package linform into (coefficient, constant).
//   - Rearrange lhs.C*x + lhs.K = rhs.C*x + rhs.K into xCoeff*x = constDiff:
//   - xCoeff    = lhs.Coefficient - rhs.Coefficient
//   - constDiff = rhs.Constant    - lhs.Constant
//   - Classify:
//   - xCoeff == 0 and constDiff == 0 → InfiniteSolutions (identity)
//   - xCoeff == 0 and constDiff != 0 → NoSolution (inconsistent)
//   - xCoeff != 0                    → UniqueSolution, x = ⌊constDiff / xCoeff⌋
//
// Division
//
//	The unique solution uses floor division (round toward negative
//	infinity). Go's native integer division truncates toward zero, so the
//	solver floor-adjusts when dividend and divisor have opposite signs
//	and do not divide evenly: "2x=-3" solves to x=-2, not x=-1.
//
// Complexity (n = len(input))
//
//   - Time:   O(n)   (two linear scans plus constant arithmetic)
//   - Memory: O(n)
//
// Usage
//
//	sol, err := equation.Solve("2x+3=x+1")
//	if err != nil {
//	    // handle ErrMalformedEquation, linform.ErrMalformedExpression,
//	    // linform.ErrEmptyExpression or ErrOptionViolation
//	}
//	fmt.Println(sol) // "x=-2"
//
//	// Custom variable letter:
//	sol, err = equation.Solve("2n=8", equation.WithVariable('n'))
//
// Options
//
//   - DefaultOptions(): variable letter 'x'.
//   - WithVariable(r):  use r as the variable letter; r must be a letter.
//
// Errors
//
//   - ErrMalformedEquation          if the input does not contain exactly one '='.
//   - linform.ErrMalformedExpression (wrapped) if a side cannot be tokenized.
//   - linform.ErrEmptyExpression     (wrapped) if a side is blank.
//   - ErrOptionViolation            if an invalid Option is supplied.
//
// Each call is a pure, synchronous, terminating computation with no
// shared state; Solve is safe for concurrent callers.
package equation
