package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lineq/internal/tui"
	"github.com/katalvlaran/lineq/logger"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Launch the interactive solver",
	Long: `Starts a terminal UI that solves equations as you type them.

Controls:
  Enter      - Solve the current line
  Esc/Ctrl+C - Quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("repl requires an interactive terminal")
	}

	// Recover with a stack trace: a crashed bubbletea program otherwise
	// leaves the terminal in the alternate screen with no diagnostics.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic in repl: %v\n%s\n", r, debug.Stack())
		}
	}()

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

	if err := tui.NewApp(v, store).Run(); err != nil {
		return fmt.Errorf("repl error: %w", err)
	}
	return nil
}
