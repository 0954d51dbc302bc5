// Package aggregate turns the noisy per-frame prediction stream into
// discrete stabilized gesture events. A fixed-capacity sliding window
// feeds a confidence-weighted vote; a four-state machine decides when
// the winning label has held long enough to emit.
package aggregate

import (
	"fmt"

	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
)

// State of the aggregation state machine.
type State string

const (
	Idle          State = "idle"          // no consistent label in the window
	Tracking      State = "tracking"      // a label is winning but not yet stable
	Stable        State = "stable"        // a label held long enough; emitted
	Transitioning State = "transitioning" // the stable label is being contested
)

// Aggregator is a synchronous per-frame transform with internal state.
// It never blocks and never fails after construction; frames that
// cannot vote simply lower the consensus.
type Aggregator struct {
	cfg config.Settings
	win *window

	state      State
	current    string // label of the current run (tracking or stable)
	run        int    // consecutive frames the current label has won
	runStart   gesture.Frame
	graceLeft  int
	frameIndex int

	// lastDynamic suppresses re-emission of a dynamic gesture until the
	// window has flushed past it.
	lastDynamic string

	framesSeen int
	emitted    int
}

// New creates an aggregator, validating the settings first.
func New(cfg config.Settings) (*Aggregator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("aggregator config: %w", err)
	}
	return &Aggregator{
		cfg:   cfg,
		win:   newWindow(cfg.WindowSize, cfg.ConfidenceThreshold),
		state: Idle,
	}, nil
}

// ProcessFrame pushes one prediction through the window and the state
// machine. It returns a Recognized gesture on the stabilization edge
// and nil on every other frame.
func (a *Aggregator) ProcessFrame(p gesture.Prediction) *gesture.Recognized {
	a.frameIndex++
	a.framesSeen++
	frame := gesture.Frame{Prediction: p, Index: a.frameIndex}

	if flushed := a.win.push(frame); flushed != "" && flushed == a.lastDynamic {
		a.lastDynamic = ""
	}

	v := a.win.tally(a.cfg.ConsistencyThreshold)
	return a.step(v, frame)
}

// step advances the state machine for one vote outcome.
func (a *Aggregator) step(v vote, frame gesture.Frame) *gesture.Recognized {
	if !v.OK {
		// No consensus. A stable label gets the transition grace; anything
		// else falls back to idle.
		if a.state == Stable {
			a.enterTransition()
		} else if a.state == Transitioning {
			a.graceLeft--
			if a.graceLeft <= 0 {
				a.toIdle()
			}
		} else {
			a.toIdle()
		}
		return nil
	}

	// Dynamic gestures are inherently transient: emit on first consensus,
	// bypassing the stability counter, and hold emission until the window
	// flushes past the label.
	if v.Kind == gesture.Dynamic {
		if v.Label == a.lastDynamic {
			return nil
		}
		a.lastDynamic = v.Label
		a.state = Stable
		a.current = v.Label
		a.run = a.win.counts[v.Label]
		a.runStart = frame
		a.emitted++
		return &gesture.Recognized{
			Label:        v.Label,
			Kind:         gesture.Dynamic,
			Confidence:   v.Confidence,
			StartedAt:    frame.Time,
			StabilizedAt: frame.Time,
			FrameCount:   a.win.counts[v.Label],
		}
	}

	switch a.state {
	case Idle:
		a.startRun(v.Label, frame)
		a.state = Tracking
		return a.maybeStabilize(v, frame)

	case Tracking:
		if v.Label == a.current {
			a.run++
		} else {
			a.startRun(v.Label, frame)
		}
		return a.maybeStabilize(v, frame)

	case Stable:
		if v.Label == a.current {
			return nil // same stabilization; never re-emit
		}
		a.enterTransition()
		return nil

	case Transitioning:
		if v.Label == a.current {
			// Disagreement was transient; the stable label is back.
			a.state = Stable
			return nil
		}
		a.graceLeft--
		if a.graceLeft <= 0 {
			a.startRun(v.Label, frame)
			a.state = Tracking
		}
		return nil
	}
	return nil
}

// maybeStabilize emits exactly once when the consecutive-run counter
// reaches the stability threshold.
func (a *Aggregator) maybeStabilize(v vote, frame gesture.Frame) *gesture.Recognized {
	if a.run < a.cfg.StabilityThreshold {
		return nil
	}
	a.state = Stable
	a.emitted++
	return &gesture.Recognized{
		Label:        a.current,
		Kind:         v.Kind,
		Confidence:   v.Confidence,
		StartedAt:    a.runStart.Time,
		StabilizedAt: frame.Time,
		FrameCount:   a.run,
	}
}

func (a *Aggregator) startRun(label string, frame gesture.Frame) {
	a.current = label
	a.run = 1
	a.runStart = frame
}

func (a *Aggregator) enterTransition() {
	a.state = Transitioning
	a.graceLeft = a.cfg.TransitionFrames
	if a.graceLeft <= 0 {
		a.toIdle()
	}
}

func (a *Aggregator) toIdle() {
	a.state = Idle
	a.current = ""
	a.run = 0
}

// ForceFinalize emits the currently tracked candidate even though it
// has not met the stability threshold, provided it has persisted for
// at least two frames. Used on manual stop.
func (a *Aggregator) ForceFinalize() *gesture.Recognized {
	if a.state != Tracking || a.run < 2 {
		return nil
	}
	v := a.win.tally(a.cfg.ConsistencyThreshold)
	if !v.OK || v.Label != a.current {
		return nil
	}
	a.state = Stable
	a.emitted++
	return &gesture.Recognized{
		Label:        a.current,
		Kind:         v.Kind,
		Confidence:   v.Confidence,
		StartedAt:    a.runStart.Time,
		StabilizedAt: a.runStart.Time,
		FrameCount:   a.run,
	}
}

// CurrentVote exposes the live (possibly unstable) vote for preview.
func (a *Aggregator) CurrentVote() (label string, confidence float64, ok bool) {
	v := a.win.tally(a.cfg.ConsistencyThreshold)
	return v.Label, v.Confidence, v.OK
}

// State returns the current machine state.
func (a *Aggregator) State() State { return a.state }

// WindowLen returns the number of frames currently buffered.
func (a *Aggregator) WindowLen() int { return a.win.len() }

// Stats reports lifetime counters.
func (a *Aggregator) Stats() (frames, gestures int) {
	return a.framesSeen, a.emitted
}

// Reset discards all buffered frames and returns to Idle. Lifetime
// counters survive; a subsequent stream behaves like a fresh start.
func (a *Aggregator) Reset() {
	a.win.reset()
	a.toIdle()
	a.lastDynamic = ""
	a.graceLeft = 0
	a.frameIndex = 0
}
