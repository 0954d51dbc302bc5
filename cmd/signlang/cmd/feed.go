package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/neeer4j/SignLang/internal/clipboard"
	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/history"
	"github.com/neeer4j/SignLang/internal/pipeline"
	"github.com/neeer4j/SignLang/internal/replay"
)

var feedCmd = &cobra.Command{
	Use:   "feed <stream.jsonl>",
	Short: "Replay a recorded classifier stream through the pipeline",
	Long: `Replay a recorded prediction stream and print the translation.

The stream file is JSON lines, one frame per line:
  {"label":"H","confidence":0.93,"kind":"static","offset_ms":33}

Offsets are relative to stream start and drive the word and sentence
timeouts, so recorded pauses translate exactly as they were signed.

Examples:
  signlang feed session.jsonl
  signlang feed session.jsonl --mode word
  signlang feed session.jsonl --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runFeed,
}

var (
	feedCopy    bool
	feedVerbose bool
	feedNoSave  bool
)

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().BoolVar(&feedCopy, "copy", false, "copy the final text to the clipboard")
	feedCmd.Flags().BoolVarP(&feedVerbose, "verbose", "v", false, "print every recognized gesture")
	feedCmd.Flags().BoolVar(&feedNoSave, "no-save", false, "do not record the translation in history")
}

func runFeed(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	mode, err := parseMode()
	if err != nil {
		return err
	}

	events, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return fmt.Errorf("stream file %s holds no frames", args[0])
	}

	p, err := pipeline.New(loadVocabulary(settings), mode, settings)
	if err != nil {
		return err
	}

	var results []gesture.TranslationResult
	p.SetCallbacks(pipeline.Callbacks{
		OnGesture: func(g gesture.Recognized) {
			if feedVerbose {
				fmt.Printf("  gesture %-12s %.0f%% (%d frames)\n", g.Label, g.Confidence*100, g.FrameCount)
			}
		},
		OnTranslation: func(result gesture.TranslationResult) {
			if result.Valid() {
				results = append(results, result)
				fmt.Println(result.Text)
			}
		},
	})
	p.Start()

	// Anchor the recorded offsets so every frame timestamp lies in the
	// past; the final flush can then use the real clock.
	total := time.Duration(events[len(events)-1].OffsetMS) * time.Millisecond
	start := time.Now().Add(-total)
	for _, ev := range events {
		p.ProcessFrame(ev.Prediction(start))
	}

	// The translation callback collects the final result too.
	p.StopAndTranslate()
	if len(results) == 0 {
		fmt.Println("(no translation)")
		return nil
	}

	if !feedNoSave {
		if err := saveResults(settings, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save history: %v\n", err)
		}
	}

	if feedCopy {
		last := results[len(results)-1]
		if err := clipboard.Write(last.Text); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	return nil
}

// saveResults appends finalized translations to the history database.
func saveResults(settings config.Settings, results []gesture.TranslationResult) error {
	if _, err := config.EnsureDir(); err != nil {
		return err
	}
	store, err := history.Open(historyPath(settings))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, result := range results {
		if _, err := store.Save(result); err != nil {
			return err
		}
	}
	return nil
}
