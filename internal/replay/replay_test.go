package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/neeer4j/SignLang/internal/gesture"
)

func writeStream(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stream.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeStream(t, `{"label":"H","confidence":0.93,"offset_ms":0}
{"label":"E","confidence":0.88,"offset_ms":33}

{"label":"J","confidence":0.91,"kind":"dynamic","offset_ms":66}
`)

	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3 (blank line skipped)", len(events))
	}
	if events[0].Label != "H" || events[0].OffsetMS != 0 {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[2].Kind != "dynamic" {
		t.Errorf("events[2].Kind = %q, want dynamic", events[2].Kind)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	path := writeStream(t, `{"label":"H","confidence":0.93,"offset_ms":0}
{broken
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPredictionAnchoring(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ev := Event{Label: "A", Confidence: 0.9, OffsetMS: 250}

	pred := ev.Prediction(start)
	if pred.Label != "A" || pred.Confidence != 0.9 {
		t.Errorf("pred = %+v", pred)
	}
	if pred.Kind != gesture.Static {
		t.Errorf("Kind = %q, want static default", pred.Kind)
	}
	if want := start.Add(250 * time.Millisecond); !pred.Time.Equal(want) {
		t.Errorf("Time = %s, want %s", pred.Time, want)
	}

	ev.Kind = "dynamic"
	if got := ev.Prediction(start).Kind; got != gesture.Dynamic {
		t.Errorf("Kind = %q, want dynamic", got)
	}
}
