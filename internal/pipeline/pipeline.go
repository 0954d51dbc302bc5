// Package pipeline wires the temporal aggregator to the sentence
// constructor and exposes the manual control surface used by the CLI,
// the TUI and the websocket server.
package pipeline

import (
	"fmt"
	"time"

	"github.com/neeer4j/SignLang/internal/aggregate"
	"github.com/neeer4j/SignLang/internal/config"
	"github.com/neeer4j/SignLang/internal/gesture"
	"github.com/neeer4j/SignLang/internal/sentence"
	"github.com/neeer4j/SignLang/internal/vocab"
)

// Callbacks are optional hooks fired synchronously from the processing
// call that caused them. Nil fields are skipped.
type Callbacks struct {
	OnGesture     func(gesture.Recognized)
	OnTextUpdated func(text, preview string)
	OnTranslation func(gesture.TranslationResult)
}

// Pipeline is the single-threaded orchestrator. Each call is one state
// transition; nothing runs in the background. One Pipeline serves one
// input source; independent sources get independent Pipelines.
type Pipeline struct {
	vocab       *vocab.Vocabulary
	aggregator  *aggregate.Aggregator
	constructor *sentence.Constructor
	callbacks   Callbacks

	running bool
	started time.Time

	lastGesture   *gesture.Recognized
	lastFrameTime time.Time
}

// New builds a pipeline. The vocabulary may be nil, in which case the
// default sign set is used. Invalid settings fail here, before any
// frame is processed.
func New(v *vocab.Vocabulary, mode sentence.Mode, cfg config.Settings) (*Pipeline, error) {
	if v == nil {
		v = vocab.New()
	}
	agg, err := aggregate.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}
	cons, err := sentence.New(v, mode, cfg)
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}
	return &Pipeline{vocab: v, aggregator: agg, constructor: cons}, nil
}

// SetCallbacks installs the event hooks. Call before Start.
func (p *Pipeline) SetCallbacks(cb Callbacks) { p.callbacks = cb }

// Start clears all state and begins accepting frames.
func (p *Pipeline) Start() {
	p.Reset()
	p.running = true
	p.started = time.Now()
}

// Stop halts processing without producing a translation.
func (p *Pipeline) Stop() { p.running = false }

// Running reports whether the pipeline accepts frames.
func (p *Pipeline) Running() bool { return p.running }

// ProcessFrame pushes one raw classifier prediction through the
// aggregator and, when a gesture stabilizes, through the constructor.
// It returns the recognized gesture on stabilization edges.
func (p *Pipeline) ProcessFrame(pred gesture.Prediction) *gesture.Recognized {
	if !p.running {
		return nil
	}
	if pred.Time.IsZero() {
		pred.Time = time.Now()
	}
	p.lastFrameTime = pred.Time

	recognized := p.aggregator.ProcessFrame(pred)
	if recognized != nil {
		p.deliver(recognized, pred.Time)
	} else {
		// Timeouts still advance on gestureless frames.
		p.applyUpdate(p.constructor.CheckTimeouts(pred.Time))
	}
	return recognized
}

// ProcessGesture feeds a pre-stabilized gesture straight to the
// constructor, skipping aggregation. Used when another component has
// already smoothed the stream.
func (p *Pipeline) ProcessGesture(g gesture.Recognized, now time.Time) {
	if !p.running {
		return
	}
	p.deliver(&g, now)
}

// deliver annotates a recognition with vocabulary meaning and folds it
// into the sentence state.
func (p *Pipeline) deliver(g *gesture.Recognized, now time.Time) {
	if p.vocab.IsWordSign(g.Label) {
		g.WordLevel = true
		if sign, ok := p.vocab.SignByLabel(g.Label); ok {
			g.Meaning = sign.Text
		}
	}
	p.lastGesture = g

	if p.callbacks.OnGesture != nil {
		p.callbacks.OnGesture(*g)
	}
	p.applyUpdate(p.constructor.AddGesture(g, now))
}

func (p *Pipeline) applyUpdate(up sentence.Update) {
	if up.Result != nil && p.callbacks.OnTranslation != nil {
		p.callbacks.OnTranslation(*up.Result)
	}
	if (up.Word != "" || up.Instant != "" || up.Result != nil) && p.callbacks.OnTextUpdated != nil {
		p.callbacks.OnTextUpdated(p.constructor.Text(), p.constructor.Preview())
	}
}

// CheckTimeouts evaluates the word and sentence timeouts without a new
// frame, e.g. from a UI refresh timer. Safe to call repeatedly.
func (p *Pipeline) CheckTimeouts(now time.Time) {
	if !p.running {
		return
	}
	p.applyUpdate(p.constructor.CheckTimeouts(now))
}

// StopAndTranslate forces both components to finalize and returns the
// translation of whatever has accumulated.
func (p *Pipeline) StopAndTranslate() gesture.TranslationResult {
	now := time.Now()
	if forced := p.aggregator.ForceFinalize(); forced != nil {
		p.deliver(forced, now)
	}
	result := p.constructor.Finalize(now)
	p.running = false

	if result.Valid() && p.callbacks.OnTranslation != nil {
		p.callbacks.OnTranslation(result)
	}
	return result
}

// Reset discards all buffered state in both components and returns the
// aggregator to idle. The pipeline keeps running if it was running.
func (p *Pipeline) Reset() {
	p.aggregator.Reset()
	p.constructor.Reset()
	p.lastGesture = nil
	p.lastFrameTime = time.Time{}
}

// Text returns the formatted text of the finalized words so far.
func (p *Pipeline) Text() string { return p.constructor.Text() }

// Preview returns the live display string including the partial word.
func (p *Pipeline) Preview() string { return p.constructor.Preview() }

// State returns the aggregator's machine state.
func (p *Pipeline) State() aggregate.State { return p.aggregator.State() }

// CurrentVote exposes the live vote for display.
func (p *Pipeline) CurrentVote() (string, float64, bool) {
	return p.aggregator.CurrentVote()
}

// LastGesture returns the most recent stabilized gesture, if any.
func (p *Pipeline) LastGesture() *gesture.Recognized { return p.lastGesture }

// Vocabulary returns the vocabulary the pipeline was built with.
func (p *Pipeline) Vocabulary() *vocab.Vocabulary { return p.vocab }

// Stats summarizes lifetime counters for display.
type Stats struct {
	Frames   int
	Gestures int
	Words    int
	State    aggregate.State
}

// Stats returns the pipeline counters.
func (p *Pipeline) Stats() Stats {
	frames, gestures := p.aggregator.Stats()
	return Stats{
		Frames:   frames,
		Gestures: gestures,
		Words:    len(p.constructor.Words()),
		State:    p.aggregator.State(),
	}
}
