// Package sentence assembles stabilized gesture events into words and
// sentences, using the vocabulary for whole-word signs, control signs
// and fingerspelled word patterns.
package sentence

import (
	"fmt"
	"strings"
	"time"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/vocab"
)

// Mode selects how much buffering the constructor performs.
type Mode string

const (
	// ModeInstant surfaces every recognized gesture as output immediately.
	ModeInstant Mode = "instant"
	// ModeWord surfaces finalized words; no sentence accumulation.
	ModeWord Mode = "word"
	// ModeSentence buffers words until the sentence timeout or manual stop.
	ModeSentence Mode = "sentence"
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeInstant, ModeWord, ModeSentence:
		return Mode(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown mode %q (want instant, word or sentence)", s)
}

// Update describes what one call changed. Zero fields mean "nothing".
type Update struct {
	Instant string                     // instant-mode output unit
	Word    string                     // word finalized by this call
	Result  *gesture.TranslationResult // sentence finalized by this call
}

// Constructor is the stateful word/sentence assembler. It is purely
// synchronous; time only enters through the now arguments, which must
// come from time.Now so the monotonic reading is retained.
type Constructor struct {
	vocab *vocab.Vocabulary
	mode  Mode
	cfg   config.Settings

	// Word buffer: letters not yet finalized.
	letters     []string
	letterConfs []float64
	lastUpdate  time.Time

	// Sentence buffer: finalized words.
	words        []string
	lastActivity time.Time
	startedAt    time.Time

	gestureCount int
	confSum      float64
}

// New creates a constructor. Settings are validated so that a broken
// timeout configuration fails before any gesture is processed.
func New(v *vocab.Vocabulary, mode Mode, cfg config.Settings) (*Constructor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("constructor config: %w", err)
	}
	if v == nil {
		v = vocab.New()
	}
	return &Constructor{vocab: v, mode: mode, cfg: cfg}, nil
}

// AddGesture folds one recognized gesture into the buffers.
func (c *Constructor) AddGesture(g *gesture.Recognized, now time.Time) Update {
	c.gestureCount++
	c.confSum += g.Confidence

	if c.mode == ModeInstant {
		text := g.Meaning
		if text == "" {
			text = c.vocab.TextFor(g.Label)
		}
		return Update{Instant: text}
	}

	var up Update

	// A gap longer than the word timeout since the previous gesture is a
	// word boundary in its own right.
	if !c.lastUpdate.IsZero() && len(c.letters) > 0 &&
		now.Sub(c.lastUpdate) > c.cfg.WordTimeout {
		c.finalizeWord(now, &up)
	}

	if c.startedAt.IsZero() {
		c.startedAt = now
	}

	switch {
	case c.vocab.Control(g.Label) == vocab.ControlBackspace:
		c.RemoveLastLetter()

	case c.vocab.Control(g.Label) == vocab.ControlSpace,
		c.vocab.Control(g.Label) == vocab.ControlWordBoundary,
		c.vocab.Control(g.Label) == vocab.ControlEnter:
		c.finalizeWord(now, &up)

	case g.WordLevel || c.vocab.IsWordSign(g.Label):
		c.finalizeWord(now, &up)
		text := g.Meaning
		if text == "" {
			text = c.vocab.TextFor(g.Label)
		}
		c.pushWord(text, now, &up)

	default:
		// Letters, digits and unknown labels accumulate as fingerspelling.
		// An unknown symbol is just a literal character, never an error.
		c.letters = append(c.letters, strings.ToUpper(g.Label))
		c.letterConfs = append(c.letterConfs, g.Confidence)
		c.lastUpdate = now
	}

	c.checkSentenceTimeout(now, &up)
	return up
}

// CheckTimeouts finalizes the word and/or sentence buffers when their
// inactivity timeouts have elapsed. Calling it repeatedly without new
// input produces at most one finalize event, because the buffers are
// empty afterwards.
func (c *Constructor) CheckTimeouts(now time.Time) Update {
	var up Update
	if len(c.letters) > 0 && !c.lastUpdate.IsZero() &&
		now.Sub(c.lastUpdate) > c.cfg.WordTimeout {
		c.finalizeWord(now, &up)
	}
	c.checkSentenceTimeout(now, &up)
	return up
}

func (c *Constructor) checkSentenceTimeout(now time.Time, up *Update) {
	if c.mode != ModeSentence {
		return
	}
	if len(c.words) == 0 || c.lastActivity.IsZero() {
		return
	}
	// Only finalize when nothing is pending in the word buffer; a partial
	// word means the signer is still mid-sentence.
	if len(c.letters) > 0 {
		return
	}
	if now.Sub(c.lastActivity) > c.cfg.SentenceTimeout {
		result := c.Finalize(now)
		up.Result = &result
	}
}

// finalizeWord joins the letter buffer into a word, canonicalizing it
// against the vocabulary patterns and abbreviations, and clears it.
func (c *Constructor) finalizeWord(now time.Time, up *Update) {
	if len(c.letters) == 0 {
		return
	}
	raw := strings.Join(c.letters, "")
	c.letters = nil
	c.letterConfs = nil

	text, ok := c.vocab.MatchWord(raw)
	if !ok {
		if expanded, found := abbreviations[strings.ToUpper(raw)]; found {
			text = expanded
		} else {
			text = capitalize(raw)
		}
	}
	c.pushWord(text, now, up)
}

func (c *Constructor) pushWord(word string, now time.Time, up *Update) {
	if word == "" {
		return
	}
	up.Word = word
	c.lastActivity = now
	if c.mode == ModeWord {
		return // each word is a complete output unit
	}
	c.words = append(c.words, word)
}

// Finalize flushes both buffers into a TranslationResult and clears
// all sentence state. A partial word is finalized through the normal
// word-finalize procedure.
func (c *Constructor) Finalize(now time.Time) gesture.TranslationResult {
	var up Update
	c.finalizeWord(now, &up)

	var duration time.Duration
	if !c.startedAt.IsZero() {
		duration = now.Sub(c.startedAt)
	}
	var confidence float64
	if c.gestureCount > 0 {
		confidence = c.confSum / float64(c.gestureCount)
	}

	result := gesture.TranslationResult{
		Text:         Format(strings.Join(c.words, " ")),
		Words:        c.words,
		Duration:     duration,
		GestureCount: c.gestureCount,
		Confidence:   confidence,
		CreatedAt:    now,
	}

	c.words = nil
	c.lastUpdate = time.Time{}
	c.lastActivity = time.Time{}
	c.startedAt = time.Time{}
	c.gestureCount = 0
	c.confSum = 0
	return result
}

// Reset discards all buffered state without producing a result.
func (c *Constructor) Reset() {
	c.letters = nil
	c.letterConfs = nil
	c.words = nil
	c.lastUpdate = time.Time{}
	c.lastActivity = time.Time{}
	c.startedAt = time.Time{}
	c.gestureCount = 0
	c.confSum = 0
}

// RemoveLastLetter drops the newest letter, or reopens the last word
// for editing when the letter buffer is empty. No-op when both buffers
// are empty.
func (c *Constructor) RemoveLastLetter() bool {
	if n := len(c.letters); n > 0 {
		c.letters = c.letters[:n-1]
		if m := len(c.letterConfs); m > 0 {
			c.letterConfs = c.letterConfs[:m-1]
		}
		return true
	}
	if n := len(c.words); n > 0 {
		last := c.words[n-1]
		c.words = c.words[:n-1]
		if len(last) > 1 {
			for _, r := range strings.ToUpper(last[:len(last)-1]) {
				c.letters = append(c.letters, string(r))
			}
		}
		return true
	}
	return false
}

// RemoveLastWord drops the pending word, or the newest finalized word.
func (c *Constructor) RemoveLastWord() bool {
	if len(c.letters) > 0 {
		c.letters = nil
		c.letterConfs = nil
		return true
	}
	if n := len(c.words); n > 0 {
		c.words = c.words[:n-1]
		return true
	}
	return false
}

// InsertSpace finalizes the pending word, as an explicit word boundary.
func (c *Constructor) InsertSpace(now time.Time) Update {
	var up Update
	c.finalizeWord(now, &up)
	return up
}

// Text returns the formatted text of the finalized words.
func (c *Constructor) Text() string {
	return Format(strings.Join(c.words, " "))
}

// Preview returns a display string of the sentence so far, with the
// partial word bracketed. It never mutates state.
func (c *Constructor) Preview() string {
	parts := append([]string(nil), c.words...)
	if len(c.letters) > 0 {
		parts = append(parts, "["+strings.Join(c.letters, "")+"]")
	}
	if len(parts) == 0 {
		return "(waiting...)"
	}
	return strings.Join(parts, " ")
}

// Words returns a copy of the finalized words.
func (c *Constructor) Words() []string {
	return append([]string(nil), c.words...)
}

// PendingWord returns the raw letter buffer.
func (c *Constructor) PendingWord() string {
	return strings.Join(c.letters, "")
}

// GestureCount returns the gestures folded in since the last finalize.
func (c *Constructor) GestureCount() int { return c.gestureCount }

// Mode returns the configured construction mode.
func (c *Constructor) Mode() Mode { return c.mode }
