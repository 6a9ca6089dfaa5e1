package linform_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lineq/linform"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// renderTerm formats one signed term with an explicit sign, e.g.
// (-3, true) → "-3x", (7, false) → "+7".
func renderTerm(value int64, variable bool) string {
	sign := "+"
	if value < 0 {
		sign = "-"
	}
	mag := value
	if mag < 0 {
		mag = -mag
	}
	piece := sign + strconv.FormatInt(mag, 10)
	if variable {
		piece += "x"
	}
	return piece
}

// buildExpr renders coefficient and constant contributions into one
// expression side, in the given interleaving order.
func buildExpr(coeffs, consts []int64, constsFirst bool) string {
	var varPart, constPart strings.Builder
	for _, c := range coeffs {
		varPart.WriteString(renderTerm(c, true))
	}
	for _, k := range consts {
		constPart.WriteString(renderTerm(k, false))
	}
	if constsFirst {
		return constPart.String() + varPart.String()
	}
	return varPart.String() + constPart.String()
}

func sum(values []int64) int64 {
	var total int64
	for _, v := range values {
		total += v
	}
	return total
}

// TestParse_Properties checks the algebraic contracts of Parse over
// generated term lists: the reduction equals the analytic sums, term
// order never matters, and whitespace is transparent.
func TestParse_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	termLists := gen.SliceOf(gen.Int64Range(-1000, 1000))

	properties := gopter.NewProperties(parameters)
	properties.Property("reduction equals analytic sums", prop.ForAll(
		func(coeffs, consts []int64) bool {
			if len(coeffs)+len(consts) == 0 {
				return true
			}
			form, err := linform.Parse(buildExpr(coeffs, consts, false))
			if err != nil {
				return false
			}
			return form.Coefficient == sum(coeffs) && form.Constant == sum(consts)
		},
		termLists, termLists,
	))

	properties.Property("term order never changes the reduction", prop.ForAll(
		func(coeffs, consts []int64) bool {
			if len(coeffs)+len(consts) == 0 {
				return true
			}
			a, errA := linform.Parse(buildExpr(coeffs, consts, false))
			b, errB := linform.Parse(buildExpr(coeffs, consts, true))
			return errA == nil && errB == nil && a == b
		},
		termLists, termLists,
	))

	properties.Property("whitespace is transparent", prop.ForAll(
		func(coeffs, consts []int64) bool {
			if len(coeffs)+len(consts) == 0 {
				return true
			}
			compact := buildExpr(coeffs, consts, false)
			spaced := strings.Join(strings.Split(compact, ""), " ")
			a, errA := linform.Parse(compact)
			b, errB := linform.Parse(spaced)
			return errA == nil && errB == nil && a == b
		},
		termLists, termLists,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
