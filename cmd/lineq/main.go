// Command lineq solves single-variable linear equations from the
// command line, a file, or an interactive terminal session.
package main

import (
	"os"

	"github.com/katalvlaran/lineq/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
