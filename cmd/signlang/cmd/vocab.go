package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neeer4j/SignLang/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab [query]",
	Short: "List or search the sign vocabulary",
	Long: `List the signs the translator knows, or search them by label,
text or description.

Examples:
  signlang vocab
  signlang vocab hello
  signlang vocab --letters
  signlang vocab --export my-signs.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVocab,
}

var (
	vocabLetters bool
	vocabWords   bool
	vocabExport  string
)

func init() {
	rootCmd.AddCommand(vocabCmd)
	vocabCmd.Flags().BoolVar(&vocabLetters, "letters", false, "show only fingerspelling letters")
	vocabCmd.Flags().BoolVar(&vocabWords, "words", false, "show only word-level signs")
	vocabCmd.Flags().StringVar(&vocabExport, "export", "", "write the vocabulary to a YAML file")
}

func runVocab(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	v := loadVocabulary(settings)

	if vocabExport != "" {
		if err := v.SaveYAML(vocabExport); err != nil {
			return fmt.Errorf("exporting vocabulary: %w", err)
		}
		fmt.Printf("Exported %d signs to %s\n", v.Size(), vocabExport)
		return nil
	}

	var signs []*vocab.SignDef
	switch {
	case len(args) == 1:
		signs = v.Search(args[0])
		if len(signs) == 0 {
			fmt.Printf("No signs match %q\n", args[0])
			return nil
		}
	case vocabLetters:
		signs = v.Letters()
	case vocabWords:
		signs = v.Words()
	default:
		signs = v.Words()
		signs = append(signs, v.Letters()...)
	}

	for _, s := range signs {
		fmt.Println(signRow(s))
	}
	fmt.Printf("\n%d signs shown (%d total)\n", len(signs), v.Size())
	return nil
}

// signRow formats one listing line: all trigger labels, display text,
// kind and description.
func signRow(s *vocab.SignDef) string {
	kind := "static"
	if s.Dynamic {
		kind = "dynamic"
	}
	return fmt.Sprintf("%-16s %-14s %-10s %s", strings.Join(s.Labels, ","), s.Display(), kind, s.Description)
}
