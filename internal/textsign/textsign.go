// Package textsign performs the reverse translation: text into a timed
// sequence of sign renderings, using word-level signs where the
// vocabulary knows them and fingerspelling everywhere else.
package textsign

import (
	"regexp"
	"strings"
	"time"

	"github.com/neeer4j/SignLang/internal/vocab"
)

// OutputType classifies one rendered sign unit.
type OutputType string

const (
	OutputWord   OutputType = "word"   // complete word gesture
	OutputLetter OutputType = "letter" // one fingerspelled letter
	OutputNumber OutputType = "number" // one digit gesture
)

// Output is a single sign to display, with a timing hint.
type Output struct {
	SignID      string
	Text        string
	DisplayText string
	Type        OutputType
	Sign        *vocab.SignDef // nil when the vocabulary has no entry
	Duration    time.Duration
	Note        string // fingerspelling context, e.g. "Start of 'ROBERT'"
}

// Sequence is the result of translating one text.
type Sequence struct {
	OriginalText  string
	Signs         []Output
	WordCount     int
	Fingerspelled int
}

// TotalDuration sums the display hints of all signs.
func (s Sequence) TotalDuration() time.Duration {
	var total time.Duration
	for _, sign := range s.Signs {
		total += sign.Duration
	}
	return total
}

// DisplayTexts returns the display strings in order.
func (s Sequence) DisplayTexts() []string {
	out := make([]string, len(s.Signs))
	for i, sign := range s.Signs {
		out[i] = sign.DisplayText
	}
	return out
}

const (
	wordDuration   = 1500 * time.Millisecond
	letterDuration = 500 * time.Millisecond
)

var punctuation = regexp.MustCompile(`[^\w\s']`)

// Translator converts text into sign sequences.
type Translator struct {
	vocab   *vocab.Vocabulary
	phrases map[string][]string // lowercased phrase -> gesture labels
}

// New creates a translator over the given vocabulary (nil for default).
func New(v *vocab.Vocabulary) *Translator {
	if v == nil {
		v = vocab.New()
	}
	return &Translator{
		vocab: v,
		phrases: map[string][]string{
			"thank you":         {"thank_you"},
			"i love you":        {"i_love_you"},
			"how are you":       {"how", "you"},
			"nice to meet you":  {"nice", "meet", "you"},
			"my name is":        {"my", "name"},
			"what is your name": {"what", "your", "name"},
		},
	}
}

// AddPhrase registers a custom phrase pattern mapping to sign labels.
func (t *Translator) AddPhrase(phrase string, labels []string) {
	t.phrases[strings.ToLower(phrase)] = labels
}

// Translate converts text to a sign sequence. Unknown words are
// fingerspelled letter by letter.
func (t *Translator) Translate(text string) Sequence {
	seq := Sequence{OriginalText: text}
	text = normalize(text)
	if text == "" {
		return seq
	}

	if labels, ok := t.matchPhrase(strings.ToLower(text)); ok {
		for _, label := range labels {
			if out, ok := t.wordByLabel(label); ok {
				seq.Signs = append(seq.Signs, out)
			}
		}
		seq.WordCount = len(labels)
		return seq
	}

	for _, token := range strings.Fields(text) {
		switch {
		case len(token) == 1 && isAlpha(token):
			seq.Signs = append(seq.Signs, t.letter(rune(strings.ToUpper(token)[0]), ""))

		case isDigits(token):
			for _, digit := range token {
				seq.Signs = append(seq.Signs, t.number(digit))
			}

		default:
			if out, ok := t.word(token); ok {
				seq.Signs = append(seq.Signs, out)
				seq.WordCount++
			} else {
				seq.Signs = append(seq.Signs, t.fingerspell(token)...)
				seq.Fingerspelled++
			}
		}
	}
	return seq
}

func (t *Translator) matchPhrase(text string) ([]string, bool) {
	for phrase, labels := range t.phrases {
		if text == phrase || strings.HasPrefix(text, phrase+" ") {
			return labels, true
		}
	}
	return nil, false
}

func (t *Translator) word(token string) (Output, bool) {
	sign, ok := t.vocab.SignByText(token)
	if !ok || (sign.Category != vocab.CategoryWord && sign.Category != vocab.CategoryPhrase) {
		return Output{}, false
	}
	return Output{
		SignID:      sign.ID,
		Text:        token,
		DisplayText: sign.Display(),
		Type:        OutputWord,
		Sign:        sign,
		Duration:    signDuration(sign, wordDuration),
	}, true
}

func (t *Translator) wordByLabel(label string) (Output, bool) {
	sign, ok := t.vocab.SignByLabel(label)
	if !ok {
		return Output{}, false
	}
	return Output{
		SignID:      sign.ID,
		Text:        sign.Text,
		DisplayText: sign.Display(),
		Type:        OutputWord,
		Sign:        sign,
		Duration:    signDuration(sign, wordDuration),
	}, true
}

func (t *Translator) letter(r rune, note string) Output {
	s := string(r)
	sign, _ := t.vocab.SignByText(s)
	return Output{
		SignID:      "letter_" + strings.ToLower(s),
		Text:        s,
		DisplayText: s,
		Type:        OutputLetter,
		Sign:        sign,
		Duration:    letterDuration,
		Note:        note,
	}
}

func (t *Translator) number(digit rune) Output {
	s := string(digit)
	sign, _ := t.vocab.SignByText(s)
	return Output{
		SignID:      "number_" + s,
		Text:        s,
		DisplayText: s,
		Type:        OutputNumber,
		Sign:        sign,
		Duration:    letterDuration,
	}
}

// fingerspell expands an unknown word into one letter sign per rune,
// annotating position so a viewer can follow along.
func (t *Translator) fingerspell(word string) []Output {
	upper := strings.ToUpper(word)
	runes := []rune(upper)
	var signs []Output
	for i, r := range runes {
		if r < 'A' || r > 'Z' {
			continue
		}
		var note string
		switch i {
		case 0:
			note = "Start of '" + word + "'"
		case len(runes) - 1:
			note = "End of '" + word + "'"
		}
		signs = append(signs, t.letter(r, note))
	}
	return signs
}

func signDuration(sign *vocab.SignDef, fallback time.Duration) time.Duration {
	if sign != nil && sign.Duration > 0 {
		return time.Duration(sign.Duration * float64(time.Second))
	}
	return fallback
}

func normalize(text string) string {
	text = punctuation.ReplaceAllString(text, " ")
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return false
		}
	}
	return len(s) > 0
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
