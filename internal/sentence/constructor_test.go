package sentence

import (
	"testing"
	"time"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/vocab"
)

func newTestConstructor(t *testing.T, mode Mode) *Constructor {
	t.Helper()
	c, err := New(vocab.New(), mode, config.Default())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func letterGesture(label string) *gesture.Recognized {
	return &gesture.Recognized{Label: label, Kind: gesture.Static, Confidence: 0.9}
}

// spell feeds the labels in quick succession starting at base and
// returns the time of the last gesture.
func spell(c *Constructor, base time.Time, labels ...string) time.Time {
	now := base
	for _, label := range labels {
		c.AddGesture(letterGesture(label), now)
		now = now.Add(100 * time.Millisecond)
	}
	return now
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	cfg := config.Default()
	cfg.WordTimeout = 0
	if _, err := New(vocab.New(), ModeSentence, cfg); err == nil {
		t.Fatal("expected error for zero word timeout")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"instant", ModeInstant, false},
		{"word", ModeWord, false},
		{"sentence", ModeSentence, false},
		{"SENTENCE", ModeSentence, false},
		{"", "", true},
		{"letters", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFingerspelledWordCanonicalized(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	base := time.Now()

	last := spell(c, base, "H", "E", "L", "L", "O")
	if got := c.PendingWord(); got != "HELLO" {
		t.Fatalf("PendingWord = %q, want HELLO", got)
	}

	// Word timeout elapses: the pattern table canonicalizes the spelling.
	up := c.CheckTimeouts(last.Add(2 * time.Second))
	if up.Word != "Hello" {
		t.Errorf("Word = %q, want Hello", up.Word)
	}
	if got := c.Text(); got != "Hello" {
		t.Errorf("Text = %q, want Hello", got)
	}
}

func TestAbbreviationExpansion(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	last := spell(c, time.Now(), "T", "Y")

	up := c.AddGesture(letterGesture("space"), last)
	if up.Word != "Thank you" {
		t.Errorf("Word = %q, want %q", up.Word, "Thank you")
	}
}

func TestUnknownSpellingCapitalized(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	last := spell(c, time.Now(), "X", "Q", "Z")

	up := c.InsertSpace(last)
	if up.Word != "Xqz" {
		t.Errorf("Word = %q, want Xqz", up.Word)
	}
}

func TestWordLevelSign(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()

	up := c.AddGesture(&gesture.Recognized{
		Label: "hello", Kind: gesture.Dynamic, Confidence: 0.9,
	}, now)
	if up.Word != "Hello" {
		t.Errorf("Word = %q, want Hello", up.Word)
	}
	if got := c.Words(); len(got) != 1 || got[0] != "Hello" {
		t.Errorf("Words = %v, want [Hello]", got)
	}
}

func TestWordSignFinalizesPendingLetters(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	last := spell(c, time.Now(), "H", "I")

	c.AddGesture(&gesture.Recognized{
		Label: "you", Kind: gesture.Static, Confidence: 0.9, Meaning: "You", WordLevel: true,
	}, last)

	got := c.Words()
	if len(got) != 2 || got[0] != "Hi" || got[1] != "You" {
		t.Errorf("Words = %v, want [Hi You]", got)
	}
}

func TestGapBetweenGesturesActsAsWordBoundary(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	base := time.Now()

	last := spell(c, base, "H", "I")
	// Next letter arrives after the word timeout: HI finalizes first.
	c.AddGesture(letterGesture("A"), last.Add(2*time.Second))

	if got := c.Words(); len(got) != 1 || got[0] != "Hi" {
		t.Errorf("Words = %v, want [Hi]", got)
	}
	if got := c.PendingWord(); got != "A" {
		t.Errorf("PendingWord = %q, want A", got)
	}
}

func TestBackspaceRemovesPendingLetter(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	last := spell(c, time.Now(), "H", "E")

	c.AddGesture(letterGesture("backspace"), last)
	if got := c.PendingWord(); got != "H" {
		t.Errorf("PendingWord = %q, want H", got)
	}
}

func TestBackspaceReopensLastWord(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	last := spell(c, time.Now(), "H", "E", "L", "L", "O")
	c.InsertSpace(last)

	if !c.RemoveLastLetter() {
		t.Fatal("RemoveLastLetter = false, want true")
	}
	if got := c.Words(); len(got) != 0 {
		t.Errorf("Words = %v, want empty", got)
	}
	if got := c.PendingWord(); got != "HELL" {
		t.Errorf("PendingWord = %q, want HELL", got)
	}
}

func TestRemoveLastWord(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()
	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	c.AddGesture(&gesture.Recognized{Label: "you", Confidence: 0.9}, now)

	if !c.RemoveLastWord() {
		t.Fatal("RemoveLastWord = false, want true")
	}
	if got := c.Words(); len(got) != 1 || got[0] != "Hello" {
		t.Errorf("Words = %v, want [Hello]", got)
	}
}

func TestInstantMode(t *testing.T) {
	c := newTestConstructor(t, ModeInstant)
	now := time.Now()

	up := c.AddGesture(letterGesture("A"), now)
	if up.Instant != "A" {
		t.Errorf("Instant = %q, want A", up.Instant)
	}

	up = c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	if up.Instant != "Hello" {
		t.Errorf("Instant = %q, want Hello", up.Instant)
	}
	if got := c.Words(); len(got) != 0 {
		t.Errorf("Words = %v, want empty in instant mode", got)
	}
}

func TestWordModeDoesNotAccumulateSentence(t *testing.T) {
	c := newTestConstructor(t, ModeWord)
	last := spell(c, time.Now(), "H", "I")

	up := c.InsertSpace(last)
	if up.Word != "Hi" {
		t.Errorf("Word = %q, want Hi", up.Word)
	}
	if got := c.Words(); len(got) != 0 {
		t.Errorf("Words = %v, want empty in word mode", got)
	}
}

func TestSentenceTimeout(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()

	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	c.AddGesture(&gesture.Recognized{Label: "you", Confidence: 0.8}, now.Add(time.Second))

	// Before the timeout: nothing.
	up := c.CheckTimeouts(now.Add(2 * time.Second))
	if up.Result != nil {
		t.Fatalf("Result before timeout = %+v, want nil", up.Result)
	}

	up = c.CheckTimeouts(now.Add(5 * time.Second))
	if up.Result == nil {
		t.Fatal("Result after timeout = nil, want sentence")
	}
	if up.Result.Text != "Hello You" {
		t.Errorf("Text = %q, want %q", up.Result.Text, "Hello You")
	}
	if up.Result.GestureCount != 2 {
		t.Errorf("GestureCount = %d, want 2", up.Result.GestureCount)
	}

	// Idempotent: the buffers are empty now.
	up = c.CheckTimeouts(now.Add(10 * time.Second))
	if up.Result != nil {
		t.Errorf("second timeout Result = %+v, want nil", up.Result)
	}
}

func TestSentenceTimeoutWaitsForPendingWord(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()

	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	spell(c, now.Add(time.Second), "H", "I")

	// The word timeout fires first and finalizes HI; the flush counts as
	// activity, so the sentence finalizes on a later poll.
	up := c.CheckTimeouts(now.Add(10 * time.Second))
	if up.Word != "Hi" {
		t.Errorf("Word = %q, want Hi", up.Word)
	}
	if up.Result != nil {
		t.Fatalf("Result = %+v, want nil while the flush is fresh", up.Result)
	}

	up = c.CheckTimeouts(now.Add(14 * time.Second))
	if up.Result == nil {
		t.Fatal("Result = nil, want sentence after pending word flushed")
	}
	if up.Result.Text != "Hello Hi" {
		t.Errorf("Text = %q, want %q", up.Result.Text, "Hello Hi")
	}
}

func TestFinalizeFlushesPartialWord(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()
	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	last := spell(c, now.Add(200*time.Millisecond), "T", "Y")

	result := c.Finalize(last)
	if !result.Valid() {
		t.Fatal("result not valid")
	}
	if result.Text != "Hello Thank you" {
		t.Errorf("Text = %q, want %q", result.Text, "Hello Thank you")
	}
	if result.GestureCount != 3 {
		t.Errorf("GestureCount = %d, want 3", result.GestureCount)
	}
	if result.Duration <= 0 {
		t.Errorf("Duration = %s, want positive", result.Duration)
	}

	// Finalize clears everything.
	if got := c.Text(); got != "" {
		t.Errorf("Text after finalize = %q, want empty", got)
	}
	if c.GestureCount() != 0 {
		t.Errorf("GestureCount after finalize = %d, want 0", c.GestureCount())
	}
}

func TestFinalizeEmptyIsInvalid(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	if result := c.Finalize(time.Now()); result.Valid() {
		t.Errorf("empty finalize = %q, want invalid", result.Text)
	}
}

func TestPreview(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	if got := c.Preview(); got != "(waiting...)" {
		t.Fatalf("empty Preview = %q", got)
	}

	now := time.Now()
	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	spell(c, now.Add(100*time.Millisecond), "H", "I")

	if got := c.Preview(); got != "Hello [HI]" {
		t.Errorf("Preview = %q, want %q", got, "Hello [HI]")
	}
}

func TestResetDiscardsEverything(t *testing.T) {
	c := newTestConstructor(t, ModeSentence)
	now := time.Now()
	c.AddGesture(&gesture.Recognized{Label: "hello", Confidence: 0.9}, now)
	spell(c, now, "H", "I")

	c.Reset()
	if got := c.Preview(); got != "(waiting...)" {
		t.Errorf("Preview after reset = %q", got)
	}
	if result := c.Finalize(now); result.Valid() {
		t.Errorf("finalize after reset = %q, want invalid", result.Text)
	}
}
