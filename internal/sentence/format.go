package sentence

import (
	"regexp"
	"strings"
)

// abbreviations expand common fingerspelled shorthand into full text.
var abbreviations = map[string]string{
	"TY":  "Thank you",
	"TYS": "Thank you so much",
	"NP":  "No problem",
	"PLZ": "Please",
	"PLS": "Please",
	"ILY": "I love you",
	"OMG": "Oh my god",
	"BTW": "By the way",
	"IDK": "I don't know",
	"NVM": "Never mind",
}

var (
	standaloneI = regexp.MustCompile(`\bi\b`)

	// Contraction fixes for fingerspelled text, applied case-insensitively.
	contractions = []struct {
		pattern *regexp.Regexp
		repl    string
	}{
		{regexp.MustCompile(`(?i)\bI M\b`), "I'm"},
		{regexp.MustCompile(`(?i)\bDONT\b`), "don't"},
		{regexp.MustCompile(`(?i)\bWONT\b`), "won't"},
		{regexp.MustCompile(`(?i)\bCANT\b`), "can't"},
		{regexp.MustCompile(`(?i)\bYOURE\b`), "you're"},
		{regexp.MustCompile(`(?i)\bTHEYRE\b`), "they're"},
		{regexp.MustCompile(`(?i)\bILL\b`), "I'll"},
		{regexp.MustCompile(`(?i)\bYOULL\b`), "you'll"},
	}
)

// Format applies the simple normalization this system promises: squeeze
// whitespace, capitalize the first letter, uppercase standalone "i" and
// fix a handful of fingerspelled contractions. Nothing resembling real
// grammar correction happens here.
func Format(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}

	for _, c := range contractions {
		text = c.pattern.ReplaceAllString(text, c.repl)
	}
	text = standaloneI.ReplaceAllString(text, "I")
	text = strings.ToUpper(text[:1]) + text[1:]
	return text
}

// capitalize renders a fingerspelled sequence as a word: first letter
// upper, the rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
