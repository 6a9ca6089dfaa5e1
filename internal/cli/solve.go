package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/equation"
	"github.com/katalvlaran/lineq/internal/history"
	"github.com/katalvlaran/lineq/logger"
)

var (
	solveFile string
	solveJSON bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [equation...]",
	Short: "Solve linear equations",
	Long: `Solves each given equation and prints its outcome.

Equations may be passed as arguments, read from a file with --file, or
both. Inputs are independent: a malformed equation is reported and the
remaining ones are still solved.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", `read equations from a file, one per line ("-" for stdin)`)
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "output one JSON object per equation")
	rootCmd.AddCommand(solveCmd)
}

// solveReport is the JSON rendering of one solved equation.
type solveReport struct {
	Equation string `json:"equation"`
	Outcome  string `json:"outcome,omitempty"`
	Result   string `json:"result,omitempty"`
	X        *int64 `json:"x,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	inputs := append([]string(nil), args...)
	if solveFile != "" {
		fromFile, err := readEquations(cmd.InOrStdin(), solveFile)
		if err != nil {
			return err
		}
		inputs = append(inputs, fromFile...)
	}
	if len(inputs) == 0 {
		return errors.New("nothing to solve: pass equations as arguments or via --file")
	}

	v, err := activeVariable()
	if err != nil {
		return err
	}

	store, err := openHistory()
	if err != nil {
		logger.Logger().Warn().Err(err).Msg("history store unavailable, not recording")
	}
	if store != nil {
		defer store.Close()
	}

	failed := 0
	for _, input := range inputs {
		sol, solveErr := equation.Solve(input, equation.WithVariable(v))
		if solveErr != nil {
			failed++
		} else {
			record(store, input, sol)
		}

		if solveJSON {
			if err := printJSON(cmd, input, sol, solveErr); err != nil {
				return err
			}
			continue
		}
		if solveErr != nil {
			cmd.Printf("%s -> error: %v\n", input, solveErr)
		} else {
			cmd.Printf("%s -> %s\n", input, sol)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d equation(s) failed", failed, len(inputs))
	}
	return nil
}

func printJSON(cmd *cobra.Command, input string, sol equation.Solution, solveErr error) error {
	r := solveReport{Equation: input}
	if solveErr != nil {
		r.Error = solveErr.Error()
	} else {
		r.Outcome = sol.Outcome.String()
		r.Result = sol.String()
		if sol.Outcome == equation.UniqueSolution {
			x := sol.X
			r.X = &x
		}
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// record persists one solve, best effort. Failures only surface in the
// debug log so a broken history file never blocks solving.
func record(store *history.Store, input string, sol equation.Solution) {
	if store == nil {
		return
	}
	if _, err := store.Save(context.Background(), history.NewEntry(input, sol)); err != nil {
		logger.Logger().Debug().Err(err).Msg("recording solve failed")
	}
}

func readEquations(stdin io.Reader, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return inputs, nil
}
