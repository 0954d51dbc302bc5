// Package gesture defines the core types shared by the sign-language
// translation pipeline: per-frame classifier predictions, stabilized
// gesture recognitions and final translation results.
package gesture

import "time"

// Kind describes how a gesture is expressed.
type Kind string

const (
	Static  Kind = "static"  // Held hand pose (letters, numbers)
	Dynamic Kind = "dynamic" // Movement-based gesture (J, Z, wave)
)

// Confidence bands used for display purposes.
type ConfidenceLevel string

const (
	ConfidenceHigh      ConfidenceLevel = "high"      // >= 0.85
	ConfidenceMedium    ConfidenceLevel = "medium"    // 0.65 - 0.85
	ConfidenceLow       ConfidenceLevel = "low"       // 0.45 - 0.65
	ConfidenceUncertain ConfidenceLevel = "uncertain" // < 0.45
)

// LevelFor maps a raw confidence value to its display band.
func LevelFor(confidence float64) ConfidenceLevel {
	switch {
	case confidence >= 0.85:
		return ConfidenceHigh
	case confidence >= 0.65:
		return ConfidenceMedium
	case confidence >= 0.45:
		return ConfidenceLow
	}
	return ConfidenceUncertain
}

// Prediction is one raw per-frame classification from the external
// hand-tracking component. Label is empty when no hand was detected
// or the classifier produced no output for the frame.
type Prediction struct {
	Label      string
	Confidence float64
	Kind       Kind
	Time       time.Time
}

// HandDetected reports whether the frame carried a usable prediction.
func (p Prediction) HandDetected() bool {
	return p.Label != ""
}

// Frame wraps a Prediction with its position in the input stream.
// Frames live only inside the aggregator's sliding window.
type Frame struct {
	Prediction
	Index int
}

// Recognized is a stabilized gesture produced by the temporal
// aggregator. It is immutable once emitted.
type Recognized struct {
	Label      string
	Kind       Kind
	Confidence float64 // mean confidence of the contributing frames

	StartedAt    time.Time
	StabilizedAt time.Time
	FrameCount   int // frames the label persisted before emission

	// Meaning is the vocabulary text for whole-word signs, set by the
	// pipeline before the gesture reaches the sentence constructor.
	Meaning   string
	WordLevel bool
}

// Duration is the wall-clock span the gesture was observed for.
func (r Recognized) Duration() time.Duration {
	return r.StabilizedAt.Sub(r.StartedAt)
}

// Level returns the display confidence band for the recognition.
func (r Recognized) Level() ConfidenceLevel {
	return LevelFor(r.Confidence)
}

// TranslationResult is the final output of a translation session,
// produced on sentence finalize or manual stop.
type TranslationResult struct {
	Text         string
	Words        []string
	Duration     time.Duration
	GestureCount int
	Confidence   float64 // mean confidence across contributing gestures
	CreatedAt    time.Time
}

// Valid reports whether the result carries any translated text.
func (t TranslationResult) Valid() bool {
	return t.Text != ""
}

func (t TranslationResult) String() string {
	return t.Text
}
