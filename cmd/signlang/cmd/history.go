package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neeer4j/SignLang/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "Browse saved translations",
	Long: `Show past translations saved by 'signlang feed' and the server.

Examples:
  signlang history
  signlang history hello
  signlang history --limit 50
  signlang history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var (
	historyLimit int
	historyClear bool
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all saved translations")
}

func runHistory(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := history.Open(historyPath(settings))
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	var entries []history.Entry
	if len(args) == 1 {
		entries, err = store.Search(args[0], historyLimit)
	} else {
		entries, err = store.List(historyLimit)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No translations saved yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40q  %d gestures, %.1fs, %.0f%%\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Text,
			e.GestureCount, e.Duration.Seconds(), e.Confidence*100)
	}

	total, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Printf("\n%d of %d entries\n", len(entries), total)
	return nil
}
