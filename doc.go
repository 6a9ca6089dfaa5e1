// Package lineq parses and solves linear equations in a single
// variable: reduce each side to coefficient and constant sums, then
// classify the result as one root, no root, or every root.
//
// 🚀 What is lineq?
//
//	A small library plus a CLI that brings together:
//		• linform:  expression parsing into a canonical linear form (terms, signs, magnitudes)
//		• equation: equation splitting, outcome classification and floor-division roots
//		• lineq:    a cobra CLI with batch solving, persistent history and an interactive REPL
//
// ✨ Why choose lineq?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Exact integers: int64 arithmetic end to end, floor semantics spelled out
//   - Pure core: parsing and solving never touch I/O, logs or shared state
//   - Extensible: functional options (WithVariable…) for custom variable letters
//
// Under the hood, everything is organized in a few packages:
//
//	linform/  — term scanner & linear-form reduction (Parse, Terms)
//	equation/ — Solve: split on '=', classify, floor-divide
//	logger/   — shared zerolog console logger for the shells
//	internal/ — config (TOML), history (SQLite), tui (bubbletea), cli (cobra)
//	cmd/      — the lineq binary
//	examples/ — runnable demo scenarios
//
// Quick example:
//
//	sol, err := equation.Solve("2x+3=x+1")
//	// sol.String() == "x=-2"
//
// Non-exact roots floor toward negative infinity: Solve("2x=-3")
// reports x=-2, because -4 is the nearest doubled value at or below -3.
//
//	go get github.com/katalvlaran/lineq
package lineq
