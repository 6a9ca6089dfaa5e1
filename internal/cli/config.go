package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lineq configuration",
	Long:  `View and change the configuration persisted under ~/.lineq/config.toml.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetVarCmd = &cobra.Command{
	Use:   "set-var <letter>",
	Short: "Set the default variable letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetVar,
}

var configHistoryCmd = &cobra.Command{
	Use:   "history <on|off>",
	Short: "Enable or disable history recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigHistory,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetVarCmd)
	configCmd.AddCommand(configHistoryCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg := cfgStore.Config()

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Printf("  Variable: %s\n", cfg.Variable)
	enabled := "yes"
	if !cfg.History.Enabled {
		enabled = "no"
	}
	cmd.Printf("  History enabled: %s\n", enabled)
	cmd.Printf("  History dir: %s\n", cfgStore.HistoryDir())
	cmd.Printf("  File: %s\n", cfgStore.Path())
	return nil
}

func runConfigSetVar(cmd *cobra.Command, args []string) error {
	if err := cfgStore.SetVariable(args[0]); err != nil {
		return fmt.Errorf("failed to set variable: %w", err)
	}
	cmd.Printf("Variable set to %q.\n", args[0])
	return nil
}

func runConfigHistory(cmd *cobra.Command, args []string) error {
	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q: want on or off", args[0])
	}

	if err := cfgStore.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to update history setting: %w", err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	cmd.Printf("History recording %s.\n", state)
	return nil
}
