package aggregate

import (
	"github.com/neeer4j/SignLang/internal/gesture"
)

// vote is the outcome of confidence-weighted voting over the window.
type vote struct {
	Label      string
	Kind       gesture.Kind
	Confidence float64 // mean confidence of the winner's qualifying frames
	Share      float64 // winner's fraction of qualifying frames
	OK         bool    // false when the window holds no consensus
}

// window is a fixed-capacity ring buffer of frames with incrementally
// maintained per-label vote weights, so each push and each vote is O(1)
// in the window size (vote is O(distinct labels)).
//
// Frames below the confidence threshold (and frames with no detected
// hand) occupy a slot but carry no weight and do not count toward the
// consistency fraction.
type window struct {
	frames []gesture.Frame
	head   int // next slot to write
	count  int

	minConfidence float64

	weights    map[string]float64 // label -> summed confidence of qualifying frames
	counts     map[string]int     // label -> qualifying frame count
	kinds      map[string]gesture.Kind
	qualifying int
}

func newWindow(capacity int, minConfidence float64) *window {
	return &window{
		frames:        make([]gesture.Frame, capacity),
		minConfidence: minConfidence,
		weights:       make(map[string]float64),
		counts:        make(map[string]int),
		kinds:         make(map[string]gesture.Kind),
	}
}

func (w *window) qualifies(f gesture.Frame) bool {
	return f.HandDetected() && f.Confidence >= w.minConfidence
}

// push adds a frame, evicting the oldest when full, and returns the
// label whose last qualifying frame just left the window, if any.
func (w *window) push(f gesture.Frame) (flushed string) {
	if w.count == len(w.frames) {
		old := w.frames[w.head]
		if w.qualifies(old) {
			w.weights[old.Label] -= old.Confidence
			w.counts[old.Label]--
			w.qualifying--
			if w.counts[old.Label] <= 0 {
				delete(w.weights, old.Label)
				delete(w.counts, old.Label)
				delete(w.kinds, old.Label)
				flushed = old.Label
			}
		}
		w.count--
	}

	w.frames[w.head] = f
	w.head = (w.head + 1) % len(w.frames)
	w.count++

	if w.qualifies(f) {
		w.weights[f.Label] += f.Confidence
		w.counts[f.Label]++
		w.kinds[f.Label] = f.Kind
		w.qualifying++
	}
	return flushed
}

// tally performs the confidence-weighted vote. The winner is the label
// with the highest summed confidence; it must also hold at least the
// given fraction of the qualifying frames, otherwise there is no
// consensus. The fraction is computed over qualifying frames only.
func (w *window) tally(consistency float64) vote {
	if w.qualifying == 0 {
		return vote{}
	}

	// Ties break on qualifying count, then lexicographically, so the
	// winner never depends on map iteration order.
	var best string
	var bestWeight float64
	for label, weight := range w.weights {
		switch {
		case weight > bestWeight:
		case weight == bestWeight && best != "" && w.counts[label] > w.counts[best]:
		case weight == bestWeight && best != "" && w.counts[label] == w.counts[best] && label < best:
		default:
			continue
		}
		bestWeight = weight
		best = label
	}
	if best == "" {
		return vote{}
	}

	share := float64(w.counts[best]) / float64(w.qualifying)
	if share < consistency {
		return vote{}
	}

	return vote{
		Label:      best,
		Kind:       w.kinds[best],
		Confidence: w.weights[best] / float64(w.counts[best]),
		Share:      share,
		OK:         true,
	}
}

func (w *window) len() int { return w.count }

func (w *window) reset() {
	w.head = 0
	w.count = 0
	w.qualifying = 0
	w.weights = make(map[string]float64)
	w.counts = make(map[string]int)
	w.kinds = make(map[string]gesture.Kind)
}
