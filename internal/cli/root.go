// Package cli wires the lineq command tree: equation solving, history
// inspection, the interactive REPL and configuration management.
package cli

import (
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/config"
	"github.com/katalvlaran/lineq/internal/history"
	"github.com/katalvlaran/lineq/linform"
	"github.com/katalvlaran/lineq/logger"
)

// version is the build version, overridden at link time via -ldflags.
var version = "dev"

var (
	flagConfigDir string
	flagVerbose   bool
	flagVariable  string

	// cfgStore holds the loaded configuration for the running command.
	cfgStore *config.Store
)

var rootCmd = &cobra.Command{
	Use:   "lineq",
	Short: "Solve single-variable linear equations",
	Long: `lineq parses and solves linear equations in one variable, such as
"2x+3=x+1". Each side is reduced to a coefficient and constant sum;
the solver then reports a unique integer root, "No solution" or
"Infinite solutions". Non-exact roots round toward negative infinity.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.lineq)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagVariable, "var", "", "variable letter to solve for (overrides configuration)")
}

// initRuntime prepares logging and configuration before any subcommand runs.
func initRuntime(_ *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(zerolog.DebugLevel)
	}

	store, err := config.NewStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfgStore = store
	return nil
}

// activeVariable resolves the variable letter for this invocation: the
// --var flag wins over the configured default.
func activeVariable() (rune, error) {
	if flagVariable != "" {
		r, size := utf8.DecodeRuneInString(flagVariable)
		if size != len(flagVariable) || !unicode.IsLetter(r) {
			return 0, fmt.Errorf("invalid --var value %q: want a single letter", flagVariable)
		}
		return r, nil
	}
	if cfgStore != nil {
		return cfgStore.Config().VariableRune(), nil
	}
	return linform.DefaultVariable, nil
}

// openHistory opens the history store when recording is enabled. A nil
// store with a nil error means recording is switched off.
func openHistory() (*history.Store, error) {
	if cfgStore == nil || !cfgStore.Config().History.Enabled {
		return nil, nil
	}
	return history.NewStore(cfgStore.HistoryDir())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
