// Package cmd contains all CLI commands for the SignLang tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/pipeline"
	"github.com/neeer4j/SignLang/internal/sentence"
	"github.com/neeer4j/SignLang/internal/tui"
	"github.com/neeer4j/SignLang/internal/vocab"
)

var (
	cfgFile  string
	modeFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "signlang",
	Short: "Sign language to text translation toolkit",
	Long: `SignLang turns a noisy per-frame stream of gesture classifications
into stable readable text, and translates text back into timed sign
sequences for display.

The pipeline is:
  classifier frames → temporal aggregator → sentence constructor → text

Running 'signlang' without arguments launches the interactive TUI,
where letter keys simulate classifier frames.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/signlang)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "sentence", "construction mode: instant, word or sentence")
}

// initConfig sets up the config directory and ENV variables.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("SIGNLANG")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads settings.yaml from the config directory, falling
// back to defaults when the file does not exist.
func loadSettings() (config.Settings, error) {
	path := filepath.Join(getConfigDir(), "settings.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadVocabulary builds the default vocabulary and merges any custom
// signs file from the settings or the config directory.
func loadVocabulary(settings config.Settings) *vocab.Vocabulary {
	v := vocab.New()

	path := settings.SignsPath
	if path == "" {
		path = filepath.Join(getConfigDir(), "signs.yaml")
	}
	if _, err := os.Stat(path); err == nil {
		if err := v.LoadYAML(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load custom signs: %v\n", err)
		}
	}
	return v
}

// historyPath resolves where the translations database lives.
func historyPath(settings config.Settings) string {
	if settings.HistoryPath != "" {
		return settings.HistoryPath
	}
	return filepath.Join(getConfigDir(), "history.db")
}

func parseMode() (sentence.Mode, error) {
	return sentence.ParseMode(modeFlag)
}

// runTUI launches the interactive TUI in keyboard simulation mode.
func runTUI(cmd *cobra.Command, args []string) error {
	if _, err := config.EnsureDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	mode, err := parseMode()
	if err != nil {
		return err
	}

	p, err := pipeline.New(loadVocabulary(settings), mode, settings)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(p, nil), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
