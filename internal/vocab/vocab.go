// Package vocab holds the sign vocabulary: a static bidirectional
// mapping between gesture labels and text, plus letter-pattern word
// matching and control-sign classification. All lookups are pure.
package vocab

import (
	"sort"
	"strings"
)

// Category classifies a sign in the vocabulary.
type Category string

const (
	CategoryLetter      Category = "letter"
	CategoryNumber      Category = "number"
	CategoryWord        Category = "word"
	CategoryPhrase      Category = "phrase"
	CategoryPunctuation Category = "punctuation"
	CategoryControl     Category = "control"
)

// ControlKind identifies the editing action of a control sign.
type ControlKind string

const (
	ControlNone         ControlKind = ""
	ControlSpace        ControlKind = "space"
	ControlBackspace    ControlKind = "backspace"
	ControlWordBoundary ControlKind = "word_boundary"
	ControlEnter        ControlKind = "enter"
)

// SignDef describes one recognizable sign.
type SignDef struct {
	ID       string   `yaml:"id" json:"id"`
	Text     string   `yaml:"text" json:"text"`
	Category Category `yaml:"category" json:"category"`

	// Labels are the classifier outputs that trigger this sign.
	Labels  []string `yaml:"labels" json:"labels"`
	Dynamic bool     `yaml:"dynamic,omitempty" json:"dynamic,omitempty"`

	Control ControlKind `yaml:"control,omitempty" json:"control,omitempty"`

	DisplayText string  `yaml:"display_text,omitempty" json:"display_text,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Duration    float64 `yaml:"duration,omitempty" json:"duration,omitempty"` // display hint, seconds
}

// Display returns the text shown to the user for this sign.
func (s *SignDef) Display() string {
	if s.DisplayText != "" {
		return s.DisplayText
	}
	return s.Text
}

// Vocabulary is a bidirectional sign dictionary. The zero value is not
// usable; construct with New.
type Vocabulary struct {
	signs    map[string]*SignDef // id -> sign
	byLabel  map[string]string   // lowercased gesture label -> id
	byText   map[string]string   // lowercased text -> id
	patterns map[string]string   // uppercased letter sequence -> canonical word
}

// New builds a vocabulary preloaded with the default ASL sign set.
func New() *Vocabulary {
	v := &Vocabulary{
		signs:    make(map[string]*SignDef),
		byLabel:  make(map[string]string),
		byText:   make(map[string]string),
		patterns: make(map[string]string),
	}
	v.loadDefaults()
	return v
}

// Add registers a sign, indexing all its labels and its text.
// Later additions win on label collisions.
func (v *Vocabulary) Add(sign *SignDef) {
	v.signs[sign.ID] = sign
	for _, label := range sign.Labels {
		v.byLabel[strings.ToLower(label)] = sign.ID
	}
	v.byText[strings.ToLower(sign.Text)] = sign.ID
}

// AddWord registers a custom word-level sign and returns its id.
func (v *Vocabulary) AddWord(text string, labels []string, description string) string {
	id := "custom_" + strings.ReplaceAll(strings.ToLower(text), " ", "_")
	v.Add(&SignDef{
		ID:          id,
		Text:        text,
		Category:    CategoryWord,
		Labels:      labels,
		Description: description,
	})
	return id
}

// AddPattern registers a letter-sequence → word mapping.
func (v *Vocabulary) AddPattern(letters, word string) {
	v.patterns[strings.ToUpper(letters)] = word
}

// SignByLabel looks a sign up by gesture label, case-insensitively.
func (v *Vocabulary) SignByLabel(label string) (*SignDef, bool) {
	id, ok := v.byLabel[strings.ToLower(label)]
	if !ok {
		return nil, false
	}
	sign, ok := v.signs[id]
	return sign, ok
}

// SignByText looks a sign up by its text, case-insensitively.
func (v *Vocabulary) SignByText(text string) (*SignDef, bool) {
	id, ok := v.byText[strings.ToLower(text)]
	if !ok {
		return nil, false
	}
	sign, ok := v.signs[id]
	return sign, ok
}

// TextFor returns the display text for a gesture label, or the label
// itself when the vocabulary has no entry for it.
func (v *Vocabulary) TextFor(label string) string {
	if sign, ok := v.SignByLabel(label); ok {
		return sign.Display()
	}
	return label
}

// MatchWord matches a fingerspelled letter sequence against the known
// word patterns and returns the canonical word text.
func (v *Vocabulary) MatchWord(letters string) (string, bool) {
	word, ok := v.patterns[strings.ToUpper(letters)]
	return word, ok
}

// Control reports the control action of a gesture label, or ControlNone.
func (v *Vocabulary) Control(label string) ControlKind {
	sign, ok := v.SignByLabel(label)
	if !ok || sign.Category != CategoryControl {
		return ControlNone
	}
	return sign.Control
}

// IsWordSign reports whether a gesture label maps to a whole word or phrase.
func (v *Vocabulary) IsWordSign(label string) bool {
	sign, ok := v.SignByLabel(label)
	return ok && (sign.Category == CategoryWord || sign.Category == CategoryPhrase)
}

// IsDynamic reports whether a gesture label requires motion tracking.
func (v *Vocabulary) IsDynamic(label string) bool {
	sign, ok := v.SignByLabel(label)
	return ok && sign.Dynamic
}

// Size returns the number of signs in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.signs)
}

// Words returns all word- and phrase-level signs, sorted by text.
func (v *Vocabulary) Words() []*SignDef {
	return v.collect(func(s *SignDef) bool {
		return s.Category == CategoryWord || s.Category == CategoryPhrase
	})
}

// Letters returns all letter signs, sorted by text.
func (v *Vocabulary) Letters() []*SignDef {
	return v.collect(func(s *SignDef) bool { return s.Category == CategoryLetter })
}

// Search returns signs whose text, description or labels contain the
// query, case-insensitively, sorted by text.
func (v *Vocabulary) Search(query string) []*SignDef {
	q := strings.ToLower(query)
	return v.collect(func(s *SignDef) bool {
		if strings.Contains(strings.ToLower(s.Text), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			return true
		}
		for _, label := range s.Labels {
			if strings.Contains(strings.ToLower(label), q) {
				return true
			}
		}
		return false
	})
}

func (v *Vocabulary) collect(keep func(*SignDef) bool) []*SignDef {
	var out []*SignDef
	for _, sign := range v.signs {
		if keep(sign) {
			out = append(out, sign)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	return out
}
