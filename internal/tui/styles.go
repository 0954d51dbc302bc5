// Package tui provides the interactive terminal UI for live sign
// translation and text-to-sign playback.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#e94560") // Red - titles, stable signs
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, preview
	ColorAccent    = lipgloss.Color("#ffc107") // Yellow - vote meter, big letter
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#00d26a") // Green - finalized sentences
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	stateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	voteStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	bigLetterStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Padding(0, 2)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 2).
			Margin(1, 0)

	sentenceStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	signBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Margin(1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	copiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
