// Package clipboard copies translation results to the system clipboard.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
)

// command picks the platform clipboard writer, or nil when none exists.
func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input")
		}
		return nil
	}
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	if cmd == nil {
		return exec.ErrNotFound
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available reports whether a clipboard writer can be found.
func Available() bool {
	return command() != nil
}
