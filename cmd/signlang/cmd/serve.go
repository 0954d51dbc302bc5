package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neeer4j/SignLang/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the WebSocket translation server",
	Long: `Serve the translation pipeline over WebSocket so external
classifiers can stream frames in and receive text back.

Each connection on /ws/frames gets its own pipeline. Send:
  {"type":"frame","label":"H","confidence":0.93,"kind":"static"}
and control messages {"type":"stop"|"reset"|"space"|"backspace"}.

Examples:
  signlang serve
  signlang serve --addr :9000 --mode word`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from settings, :8870)")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	mode, err := parseMode()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		settings.ServerAddr = serveAddr
	}

	srv, err := server.New(loadVocabulary(settings), mode, settings)
	if err != nil {
		return err
	}
	fmt.Printf("Listening on %s (mode: %s)\n", settings.ServerAddr, mode)
	return srv.ListenAndServe()
}
