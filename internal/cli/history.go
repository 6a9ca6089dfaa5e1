package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/internal/history"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously solved equations",
	Long: `Lists equations recorded by solve and repl.

Recording is controlled by the history.enabled configuration key;
listing and clearing work regardless of it.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded solves, newest first",
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded solves",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output entries as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistoryStore() (*history.Store, error) {
	store, err := history.NewStore(cfgStore.HistoryDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("No recorded solves.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("  [%s] %s -> %s\n", e.SolvedAt.Local().Format("2006-01-02 15:04"), e.Equation, e.Result)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	store, err := openHistoryStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count history: %w", err)
	}
	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Printf("Removed %d recorded solve(s).\n", n)
	return nil
}
