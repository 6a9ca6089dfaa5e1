package equation_test

import (
	"fmt"

	"github.com/katalvlaran/lineq/equation"
)

// ExampleSolve classifies and solves a simple linear equation.
func ExampleSolve() {
	sol, err := equation.Solve("2x+3=x+1")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output:
	// x=-2
}

// ExampleSolve_identity reports infinitely many solutions for an identity.
func ExampleSolve_identity() {
	sol, err := equation.Solve("3x-2=3x-2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output:
	// Infinite solutions
}

// ExampleSolve_inconsistent reports an equation with no root.
func ExampleSolve_inconsistent() {
	sol, err := equation.Solve("x+1=x+2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output:
	// No solution
}

// ExampleSolve_floorDivision shows the floor-rounded root of an inexact
// quotient; truncating division would answer -1 here.
func ExampleSolve_floorDivision() {
	sol, err := equation.Solve("2x=-3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output:
	// x=-2
}

// ExampleSolve_customVariable solves in a different letter.
func ExampleSolve_customVariable() {
	sol, err := equation.Solve("2n=8", equation.WithVariable('n'))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output:
	// n=4
}

// ExampleSolve_batch classifies a small batch, one line per equation.
func ExampleSolve_batch() {
	for _, input := range []string{"x+5-3+x=6+x-2", "x=x", "x+1=x+2", "2x=8"} {
		sol, err := equation.Solve(input)
		if err != nil {
			fmt.Printf("%s -> error\n", input)
			continue
		}
		fmt.Printf("%s -> %s\n", input, sol)
	}
	// Output:
	// x+5-3+x=6+x-2 -> x=2
	// x=x -> Infinite solutions
	// x+1=x+2 -> No solution
	// 2x=8 -> x=4
}
