package linform_test

import (
	"fmt"

	"github.com/katalvlaran/lineq/linform"
)

// ExampleParse reduces a mixed side to its (coefficient, constant) pair.
func ExampleParse() {
	form, err := linform.Parse("x+5-3+x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(form.Coefficient, form.Constant)
	// Output:
	// 2 2
}

// ExampleParse_customVariable parses with 'y' as the unknown.
func ExampleParse_customVariable() {
	form, err := linform.Parse("3y - 7", linform.WithVariable('y'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(form.Render('y'))
	// Output:
	// 3y-7
}

// ExampleTerms shows the raw signed term stream behind a reduction.
func ExampleTerms() {
	terms, err := linform.Terms("2x-3+x")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, term := range terms {
		fmt.Printf("sign=%+d variable=%t magnitude=%d\n", term.Sign, term.Variable, term.Magnitude)
	}
	// Output:
	// sign=+1 variable=true magnitude=2
	// sign=-1 variable=false magnitude=3
	// sign=+1 variable=true magnitude=1
}

// ExampleLinearForm_String prints the canonical rendering of a form.
func ExampleLinearForm_String() {
	fmt.Println(linform.LinearForm{Coefficient: 1, Constant: 3})
	fmt.Println(linform.LinearForm{Coefficient: -1, Constant: 0})
	fmt.Println(linform.LinearForm{Coefficient: 0, Constant: -4})
	// Output:
	// x+3
	// -x
	// -4
}
