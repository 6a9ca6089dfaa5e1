// Package linform parses one side of a single-variable linear equation
// into its reduced LinearForm: the (coefficient, constant) pair.
//
// What
//
//   - Tokenize an expression such as "2x+3-x" into signed Terms.
//   - Reduce the terms into a LinearForm:
//   - Coefficient: net multiplier of the variable
//   - Constant:    net value of all numeric terms
//   - Terms are joined by + and -; every term is either a variable term
//     (digits followed by the variable letter, e.g. "2x", or a bare "x")
//     or a constant term (digits only).
//   - Term order never affects the result: addition is commutative, so
//     "x+5-3+x" and "x+x+5-3" reduce to the same LinearForm.
//
// Why
//
//   - A linear equation "lhs = rhs" reduces to two LinearForms; solving is
//     then simple integer arithmetic on the two pairs (see package equation).
//   - Keeping the parser a pure, allocation-light leaf makes it trivially
//     safe for concurrent callers and easy to fuzz and property-test.
//
// Grammar
//
//	expr    = [sign] term { sign term } .
//	sign    = "+" | "-" .
//	term    = variable-term | constant-term .
//	variable-term = { digit } variable .
//	constant-term = digit { digit } .
//
//	Whitespace is stripped before scanning. A missing leading sign is an
//	implicit "+". No parentheses, products of variables, floats or exponents.
//
// Complexity (n = len(expr))
//
//   - Time:   O(n)   (single left-to-right scan)
//   - Memory: O(n)   (normalized copy plus one Term per scanned term)
//
// Usage
//
//	form, err := linform.Parse("2x+3-x")
//	if err != nil {
//	    // handle ErrEmptyExpression, ErrMalformedExpression or ErrOptionViolation
//	}
//	// form.Coefficient == 1, form.Constant == 3
//
//	// Custom variable letter:
//	form, err = linform.Parse("3y-7", linform.WithVariable('y'))
//
//	// Raw term stream, e.g. for diagnostics:
//	terms, err := linform.Terms("x-4+2x")
//
// Options
//
//   - DefaultOptions(): variable letter 'x'.
//   - WithVariable(r):  use r as the variable letter; r must be a letter.
//
// Errors
//
//   - ErrEmptyExpression     if the input is empty after whitespace removal.
//   - ErrMalformedExpression if a term body cannot be read as digits, a
//     digits-then-variable run, or if two signs are adjacent.
//   - ErrOptionViolation     if an invalid Option is supplied.
package linform
