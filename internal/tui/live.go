package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/neeer4j/SignLang/internal/bigletter"
	"github.com/neeer4j/SignLang/internal/clipboard"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/pipeline"
	"github.com/neeer4j/SignLang/internal/replay"
	"github.com/neeer4j/SignLang/internal/textsign"
)

// frameInterval approximates a 30 fps camera feed.
const frameInterval = 33 * time.Millisecond

type tickMsg time.Time

type viewMode int

const (
	viewLive viewMode = iota
	viewCompose
	viewPlayback
)

// session accumulates pipeline events. The model holds a pointer so the
// callbacks, which fire inside Update, land in shared state.
type session struct {
	gestures  []gesture.Recognized
	sentences []gesture.TranslationResult
	text      string
	preview   string
}

// Model is the live translation TUI.
type Model struct {
	pipe *pipeline.Pipeline
	log  *session

	// Replay input; nil means keyboard simulation.
	events []replay.Event
	next   int
	start  time.Time

	// Text-to-sign playback
	translator *textsign.Translator
	input      textinput.Model
	player     *textsign.Player
	playUntil  time.Time

	mode   viewMode
	width  int
	height int
	copied bool
}

// New creates the TUI model. events may be nil for keyboard-driven use.
func New(p *pipeline.Pipeline, events []replay.Event) Model {
	log := &session{}
	p.SetCallbacks(pipeline.Callbacks{
		OnGesture: func(g gesture.Recognized) {
			log.gestures = append(log.gestures, g)
		},
		OnTextUpdated: func(text, preview string) {
			log.text = text
			log.preview = preview
		},
		OnTranslation: func(result gesture.TranslationResult) {
			if result.Valid() {
				log.sentences = append(log.sentences, result)
			}
		},
	})
	p.Start()

	input := textinput.New()
	input.Placeholder = "text to sign..."
	input.CharLimit = 120
	input.Width = 40

	return Model{
		pipe:       p,
		log:        log,
		events:     events,
		translator: textsign.New(p.Vocabulary()),
		input:      input,
		start:      time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		switch m.mode {
		case viewLive:
			m.feedReplay(now)
			m.pipe.CheckTimeouts(now)
		case viewPlayback:
			if m.player != nil && m.player.Playing() && now.After(m.playUntil) {
				if m.player.Advance() {
					m.playUntil = now.Add(m.player.Current().Duration)
				}
			}
		}
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// feedReplay pushes due recorded frames into the pipeline.
func (m *Model) feedReplay(now time.Time) {
	for m.next < len(m.events) {
		pred := m.events[m.next].Prediction(m.start)
		if pred.Time.After(now) {
			return
		}
		m.pipe.ProcessFrame(pred)
		m.next++
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == viewCompose {
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = viewLive
			return m, nil
		case tea.KeyEnter:
			seq := m.translator.Translate(m.input.Value())
			m.player = textsign.NewPlayer(seq)
			m.player.Start()
			if cur := m.player.Current(); cur != nil {
				m.playUntil = time.Now().Add(cur.Duration)
			}
			m.mode = viewPlayback
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.mode == viewPlayback {
			m.mode = viewLive
		}
		return m, nil

	case "t":
		m.mode = viewCompose
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case " ":
		m.pipe.ProcessGesture(gesture.Recognized{Label: "space", Kind: gesture.Static, Confidence: 1}, time.Now())
		m.copied = false

	case "backspace":
		m.pipe.ProcessGesture(gesture.Recognized{Label: "backspace", Kind: gesture.Static, Confidence: 1}, time.Now())

	case "enter":
		// The translation callback records the result.
		m.pipe.StopAndTranslate()
		m.pipe.Start()

	case "r":
		m.pipe.Reset()
		m.log.text = ""
		m.log.preview = m.pipe.Preview()

	case "c":
		if n := len(m.log.sentences); n > 0 && clipboard.Available() {
			if err := clipboard.Write(m.log.sentences[n-1].Text); err == nil {
				m.copied = true
			}
		}

	default:
		// Single letters simulate classifier frames in keyboard mode.
		if m.events == nil && len(msg.String()) == 1 {
			r := msg.String()[0]
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				m.pipe.ProcessFrame(gesture.Prediction{
					Label:      strings.ToUpper(msg.String()),
					Confidence: 0.9,
					Kind:       gesture.Static,
					Time:       time.Now(),
				})
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case viewCompose:
		return m.composeView()
	case viewPlayback:
		return m.playbackView()
	}
	return m.liveView()
}

func (m Model) liveView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SignLang") + " " +
		subtitleStyle.Render("live translation") + "\n\n")

	label, confidence, ok := m.pipe.CurrentVote()
	b.WriteString(labelStyle.Render("State") +
		stateStyle.Render(string(m.pipe.State())) + "\n")
	if ok {
		b.WriteString(labelStyle.Render("Vote") +
			voteStyle.Render(fmt.Sprintf("%s %s %.0f%%", label, meter(confidence, 20), confidence*100)) + "\n")
	} else {
		b.WriteString(labelStyle.Render("Vote") + helpStyle.Render("(no consensus)") + "\n")
	}

	if last := m.pipe.LastGesture(); last != nil {
		if art := bigletter.Render(last.Label, 14, 7); art != "" {
			b.WriteString("\n" + bigLetterStyle.Render(art) + "\n")
		} else {
			b.WriteString("\n" + bigLetterStyle.Render(last.Label) + "\n")
		}
	}

	b.WriteString(previewBoxStyle.Render(
		labelStyle.Render("Preview") + valueStyle.Render(m.pipe.Preview())) + "\n")

	if n := len(m.log.sentences); n > 0 {
		b.WriteString(labelStyle.Render("Output") + "\n")
		from := 0
		if n > 5 {
			from = n - 5
		}
		for _, s := range m.log.sentences[from:] {
			b.WriteString("  " + sentenceStyle.Render(s.Text) + "\n")
		}
	}
	if m.copied {
		b.WriteString(copiedStyle.Render("copied to clipboard") + "\n")
	}

	stats := m.pipe.Stats()
	b.WriteString("\n" + helpStyle.Render(fmt.Sprintf(
		"%d frames · %d gestures · %d words", stats.Frames, stats.Gestures, stats.Words)) + "\n")
	b.WriteString(helpStyle.Render(
		"space: word break · backspace: delete · enter: translate · r: reset · t: text→sign · c: copy · q: quit"))
	return b.String()
}

func (m Model) composeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SignLang") + " " +
		subtitleStyle.Render("text to sign") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")
	b.WriteString(helpStyle.Render("enter: play signs · esc: back"))
	return b.String()
}

func (m Model) playbackView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SignLang") + " " +
		subtitleStyle.Render("sign playback") + "\n\n")

	cur := m.player.Current()
	if cur == nil {
		b.WriteString(sentenceStyle.Render("done") + "\n\n")
		b.WriteString(helpStyle.Render("esc: back"))
		return b.String()
	}

	current, total := m.player.Progress()
	header := fmt.Sprintf("%s  (%d/%d)", cur.DisplayText, current, total)
	pad := 24 - runewidth.StringWidth(header)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(signBoxStyle.Render(header + strings.Repeat(" ", pad)) + "\n")

	if len(cur.DisplayText) == 1 {
		if art := bigletter.Render(cur.DisplayText, 14, 7); art != "" {
			b.WriteString(bigLetterStyle.Render(art) + "\n")
		}
	}
	if cur.Sign != nil && cur.Sign.Description != "" {
		b.WriteString(valueStyle.Render(cur.Sign.Description) + "\n")
	}
	if cur.Note != "" {
		b.WriteString(helpStyle.Render(cur.Note) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("esc: back"))
	return b.String()
}

// meter renders a confidence bar of the given cell width.
func meter(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(ColorAccent).Render(bar)
}
