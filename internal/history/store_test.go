package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/neeer4j/SignLang/internal/gesture"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(text string, words []string, created time.Time) gesture.TranslationResult {
	return gesture.TranslationResult{
		Text:         text,
		Words:        words,
		GestureCount: len(words),
		Duration:     2 * time.Second,
		Confidence:   0.87,
		CreatedAt:    created,
	}
}

func TestSaveAndList(t *testing.T) {
	store := openTestStore(t)
	base := time.Now()

	for i, text := range []string{"Hello", "Thank you", "Hello You"} {
		r := result(text, []string{text}, base.Add(time.Duration(i)*time.Minute))
		if _, err := store.Save(r); err != nil {
			t.Fatalf("Save(%q): %v", text, err)
		}
	}

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Text != "Hello You" || entries[2].Text != "Hello" {
		t.Errorf("order = %q ... %q, want newest first", entries[0].Text, entries[2].Text)
	}
	if entries[0].GestureCount != 1 || entries[0].Duration != 2*time.Second {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestSaveSkipsInvalidResult(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Save(gesture.TranslationResult{})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id != 0 {
		t.Errorf("id = %d, want 0 for empty result", id)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestWordsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	words := []string{"Hello", "Thank you", "Bye"}

	if _, err := store.Save(result("Hello Thank you Bye", words, time.Now())); err != nil {
		t.Fatal(err)
	}
	entries, err := store.List(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	got := entries[0].Words
	if len(got) != 3 || got[1] != "Thank you" {
		t.Errorf("Words = %v, want %v", got, words)
	}
}

func TestSearch(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()
	store.Save(result("Hello there", []string{"Hello", "there"}, now))
	store.Save(result("Water please", []string{"Water", "please"}, now.Add(time.Minute)))

	entries, err := store.Search("water", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(entries) != 1 || entries[0].Text != "Water please" {
		t.Errorf("Search(water) = %v", entries)
	}

	entries, err = store.Search("nothing", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Search(nothing) = %d entries, want 0", len(entries))
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	store.Save(result("Hello", []string{"Hello"}, time.Now()))

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	n, err := store.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Count after Clear = %d, want 0", n)
	}
}
