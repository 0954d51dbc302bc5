package gesture

import (
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       ConfidenceLevel
	}{
		{0.95, ConfidenceHigh},
		{0.85, ConfidenceHigh},
		{0.80, ConfidenceMedium},
		{0.65, ConfidenceMedium},
		{0.50, ConfidenceLow},
		{0.45, ConfidenceLow},
		{0.30, ConfidenceUncertain},
		{0, ConfidenceUncertain},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.confidence); got != tt.want {
			t.Errorf("LevelFor(%g) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestHandDetected(t *testing.T) {
	if (Prediction{}).HandDetected() {
		t.Error("empty prediction reports a hand")
	}
	if !(Prediction{Label: "A", Confidence: 0.1}).HandDetected() {
		t.Error("labeled prediction reports no hand")
	}
}

func TestRecognizedDuration(t *testing.T) {
	start := time.Now()
	r := Recognized{StartedAt: start, StabilizedAt: start.Add(165 * time.Millisecond)}
	if got := r.Duration(); got != 165*time.Millisecond {
		t.Errorf("Duration = %s, want 165ms", got)
	}
}

func TestTranslationResultValid(t *testing.T) {
	if (TranslationResult{}).Valid() {
		t.Error("empty result is valid")
	}
	r := TranslationResult{Text: "Hello"}
	if !r.Valid() {
		t.Error("non-empty result is invalid")
	}
	if r.String() != "Hello" {
		t.Errorf("String = %q", r.String())
	}
}
