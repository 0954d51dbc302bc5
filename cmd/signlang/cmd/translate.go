package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neeer4j/SignLang/internal/textsign"
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate text into a timed sign sequence",
	Long: `Translate English text into the sequence of signs needed to
express it. Known words map to a single sign; everything else is
fingerspelled letter by letter.

Examples:
  signlang translate "hello world"
  signlang translate "thank you" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

var translateJSON bool

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "emit the sequence as JSON")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	seq := textsign.New(loadVocabulary(settings)).Translate(text)
	if len(seq.Signs) == 0 {
		return fmt.Errorf("nothing to translate in %q", text)
	}

	if translateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(seq)
	}

	fmt.Printf("%q: %d signs, %.1fs total\n\n", text, len(seq.Signs), seq.TotalDuration().Seconds())
	for i, out := range seq.Signs {
		fmt.Printf("%3d. %-14s %-8s %4.1fs", i+1, out.DisplayText, out.Type, out.Duration.Seconds())
		if out.Note != "" {
			fmt.Printf("  (%s)", out.Note)
		}
		fmt.Println()
	}
	return nil
}
