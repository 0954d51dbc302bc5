// Package replay loads recorded classifier streams from JSON-lines
// files so translation sessions can be rerun without a camera.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/neeer4j/SignLang/internal/gesture"
)

// Event is one recorded frame. Offset is relative to stream start.
type Event struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Kind       string  `json:"kind,omitempty"`
	OffsetMS   int64   `json:"offset_ms"`
}

// Prediction converts the recorded event to a pipeline input, anchored
// at the given stream start time.
func (e Event) Prediction(start time.Time) gesture.Prediction {
	kind := gesture.Static
	if e.Kind == string(gesture.Dynamic) {
		kind = gesture.Dynamic
	}
	return gesture.Prediction{
		Label:      e.Label,
		Confidence: e.Confidence,
		Kind:       kind,
		Time:       start.Add(time.Duration(e.OffsetMS) * time.Millisecond),
	}
}

// Load reads a JSONL stream file. Blank lines are skipped; a malformed
// line aborts with an error naming the line number.
func Load(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stream file: %w", err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(text), &ev); err != nil {
			return nil, fmt.Errorf("parsing stream file line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stream file: %w", err)
	}
	return events, nil
}
