package linform_test

import (
	"testing"

	"github.com/katalvlaran/lineq/linform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_BasicForms verifies coefficient/constant reduction across
// representative well-formed sides.
func TestParse_BasicForms(t *testing.T) {
	cases := []struct {
		name  string
		expr  string
		coeff int64
		konst int64
	}{
		{"BareVariable", "x", 1, 0},
		{"NegatedVariable", "-x", -1, 0},
		{"ScaledVariable", "2x", 2, 0},
		{"ZeroCoefficient", "0x", 0, 0},
		{"LoneConstant", "42", 0, 42},
		{"NegativeConstant", "-7", 0, -7},
		{"MixedTerms", "2x+3-x", 1, 3},
		{"CancellingTerms", "x-x", 0, 0},
		{"ManyTerms", "x+5-3+x", 2, 2},
		{"TrailingConstantPair", "6+x-2", 1, 4},
		{"AllNegative", "-x-5", -1, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form, err := linform.Parse(tc.expr)
			require.NoError(t, err, "Parse(%q) should succeed", tc.expr)
			assert.Equal(t, tc.coeff, form.Coefficient, "coefficient of %q", tc.expr)
			assert.Equal(t, tc.konst, form.Constant, "constant of %q", tc.expr)
		})
	}
}

// TestParse_TermReorderInvariance verifies that term order never changes
// the reduced form.
func TestParse_TermReorderInvariance(t *testing.T) {
	a, err := linform.Parse("x+5-3+x")
	require.NoError(t, err)
	b, err := linform.Parse("x+x+5-3")
	require.NoError(t, err)

	assert.Equal(t, a, b, "reordered terms must reduce identically")
	assert.Equal(t, int64(2), a.Coefficient)
	assert.Equal(t, int64(2), a.Constant)
}

// TestParse_WhitespaceStripped verifies that whitespace anywhere in the
// input is ignored, including inside a term.
func TestParse_WhitespaceStripped(t *testing.T) {
	form, err := linform.Parse("  2 x\t+ 1 ")
	require.NoError(t, err)
	assert.Equal(t, linform.LinearForm{Coefficient: 2, Constant: 1}, form)
}

// TestParse_ImplicitLeadingSign verifies that a missing leading sign is
// treated as '+'.
func TestParse_ImplicitLeadingSign(t *testing.T) {
	implicit, err := linform.Parse("3x-4")
	require.NoError(t, err)
	explicit, err := linform.Parse("+3x-4")
	require.NoError(t, err)

	assert.Equal(t, explicit, implicit, "implicit and explicit '+' must agree")
}

// TestParse_CustomVariable verifies WithVariable switches the letter
// recognized as the unknown.
func TestParse_CustomVariable(t *testing.T) {
	form, err := linform.Parse("3y-7", linform.WithVariable('y'))
	require.NoError(t, err)
	assert.Equal(t, linform.LinearForm{Coefficient: 3, Constant: -7}, form)

	// With variable 'y', an 'x' is a stray letter.
	_, err = linform.Parse("3x-7", linform.WithVariable('y'))
	assert.ErrorIs(t, err, linform.ErrMalformedExpression, "'x' is stray once the variable is 'y'")
}

// TestParse_OptionViolation ensures a non-letter variable is rejected
// before any scanning happens.
func TestParse_OptionViolation(t *testing.T) {
	_, err := linform.Parse("x+1", linform.WithVariable('1'))
	assert.ErrorIs(t, err, linform.ErrOptionViolation, "digit variable must error")

	_, err = linform.Parse("x+1", linform.WithVariable('+'))
	assert.ErrorIs(t, err, linform.ErrOptionViolation, "sign variable must error")
}

// TestParse_EmptyExpression ensures blank input errors ErrEmptyExpression.
func TestParse_EmptyExpression(t *testing.T) {
	for _, expr := range []string{"", "   ", "\t\n"} {
		_, err := linform.Parse(expr)
		assert.ErrorIs(t, err, linform.ErrEmptyExpression, "Parse(%q) must reject blank input", expr)
	}
}

// TestParse_Malformed enumerates inputs that cannot be tokenized into
// valid signed integer/variable terms.
func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name string
		expr string
	}{
		{"AdjacentSigns", "x+-5"},
		{"TrailingSign", "2x+"},
		{"LoneSign", "-"},
		{"StrayLetter", "5a+1"},
		{"StrayLetterAfterDigits", "12q"},
		{"UppercaseVariable", "2X"},
		{"VariableNotLast", "x3"},
		{"VariableInside", "2x2"},
		{"DoubledVariable", "xx"},
		{"MagnitudeOverflow", "9223372036854775808"},
		{"CoefficientOverflow", "9223372036854775808x"},
		{"EqualsInsideSide", "2x=1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := linform.Parse(tc.expr)
			assert.ErrorIs(t, err, linform.ErrMalformedExpression, "Parse(%q) must reject malformed input", tc.expr)
		})
	}
}

// TestParse_MaxMagnitude accepts the extremes that still fit int64.
func TestParse_MaxMagnitude(t *testing.T) {
	form, err := linform.Parse("9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, int64(9223372036854775807), form.Constant)
}

// TestTerms_StreamShape checks the raw token stream, sign and magnitude
// per term.
func TestTerms_StreamShape(t *testing.T) {
	terms, err := linform.Terms("2x-3+x")
	require.NoError(t, err)

	want := []linform.Term{
		{Sign: 1, Variable: true, Magnitude: 2},
		{Sign: -1, Variable: false, Magnitude: 3},
		{Sign: 1, Variable: true, Magnitude: 1},
	}
	assert.Equal(t, want, terms)
}

// TestTerm_Value verifies the signed contribution helper.
func TestTerm_Value(t *testing.T) {
	assert.Equal(t, int64(-3), linform.Term{Sign: -1, Magnitude: 3}.Value())
	assert.Equal(t, int64(1), linform.Term{Sign: 1, Variable: true, Magnitude: 1}.Value())
}

// TestLinearForm_Render covers the canonical renderings, including the
// zero form and negative constants.
func TestLinearForm_Render(t *testing.T) {
	cases := []struct {
		name string
		form linform.LinearForm
		want string
	}{
		{"Zero", linform.LinearForm{}, "0"},
		{"ConstantOnly", linform.LinearForm{Constant: -4}, "-4"},
		{"UnitCoefficient", linform.LinearForm{Coefficient: 1, Constant: 3}, "x+3"},
		{"NegativeUnit", linform.LinearForm{Coefficient: -1}, "-x"},
		{"General", linform.LinearForm{Coefficient: 2, Constant: -1}, "2x-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.form.String())
		})
	}

	assert.Equal(t, "2y-1", linform.LinearForm{Coefficient: 2, Constant: -1}.Render('y'), "Render must honor the variable letter")
}
