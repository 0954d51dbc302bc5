package vocab

import (
	"fmt"
	"strings"
)

// loadDefaults populates the built-in ASL sign set: the fingerspelling
// alphabet, digits, common word signs, control signs and the letter
// patterns used to canonicalize fingerspelled words.
func (v *Vocabulary) loadDefaults() {
	for _, letter := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		s := string(letter)
		v.Add(&SignDef{
			ID:       "letter_" + strings.ToLower(s),
			Text:     s,
			Category: CategoryLetter,
			Labels:   []string{s, strings.ToLower(s)},
			// J and Z are traced in the air rather than held.
			Dynamic:     s == "J" || s == "Z",
			Description: "ASL letter " + s,
			Duration:    0.5,
		})
	}

	for i := 0; i <= 9; i++ {
		digit := fmt.Sprintf("%d", i)
		v.Add(&SignDef{
			ID:          "number_" + digit,
			Text:        digit,
			Category:    CategoryNumber,
			Labels:      []string{digit, numberWords[i]},
			Description: "Number " + digit,
			Duration:    0.5,
		})
	}

	for _, sign := range defaultWords {
		s := sign
		v.Add(&s)
	}
	for _, sign := range defaultControls {
		s := sign
		v.Add(&s)
	}

	for letters, word := range defaultPatterns {
		v.patterns[letters] = word
	}
}

var numberWords = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

var defaultWords = []SignDef{
	{ID: "word_hello", Text: "Hello", Category: CategoryWord,
		Labels: []string{"hello", "wave", "hi"}, Dynamic: true,
		Description: "Wave hand for hello", Duration: 1.5},
	{ID: "word_goodbye", Text: "Goodbye", Category: CategoryWord,
		Labels: []string{"goodbye", "bye"}, Dynamic: true,
		Description: "Wave goodbye", Duration: 1.5},
	{ID: "word_thanks", Text: "Thank you", Category: CategoryWord,
		Labels:      []string{"thank_you", "thanks", "thankyou"},
		Description: "Touch chin and move forward", Duration: 1.5},
	{ID: "word_please", Text: "Please", Category: CategoryWord,
		Labels:      []string{"please"},
		Description: "Circular motion on chest", Duration: 1.5},
	{ID: "word_sorry", Text: "Sorry", Category: CategoryWord,
		Labels:      []string{"sorry"},
		Description: "Fist on chest in circular motion", Duration: 1.5},
	{ID: "word_yes", Text: "Yes", Category: CategoryWord,
		Labels:      []string{"yes", "thumbs_up"},
		Description: "Fist nodding like a head", Duration: 1.5},
	{ID: "word_no", Text: "No", Category: CategoryWord,
		Labels:      []string{"no", "thumbs_down"},
		Description: "Index and middle finger tap thumb", Duration: 1.5},
	{ID: "word_i", Text: "I", Category: CategoryWord,
		Labels:      []string{"me", "i_point"},
		Description: "Point to self", Duration: 1.0},
	{ID: "word_you", Text: "You", Category: CategoryWord,
		Labels:      []string{"you", "you_point"},
		Description: "Point to other person", Duration: 1.0},
	{ID: "word_want", Text: "Want", Category: CategoryWord,
		Labels:      []string{"want"},
		Description: "Hands pull toward body", Duration: 1.5},
	{ID: "word_need", Text: "Need", Category: CategoryWord,
		Labels:      []string{"need"},
		Description: "X hand moves down", Duration: 1.5},
	{ID: "word_help", Text: "Help", Category: CategoryWord,
		Labels:      []string{"help"},
		Description: "Thumbs up on flat hand, lift up", Duration: 1.5},
	{ID: "word_stop", Text: "Stop", Category: CategoryWord,
		Labels:      []string{"stop", "stop_hand"},
		Description: "Flat hand chops into other palm", Duration: 1.5},
	{ID: "word_love", Text: "Love", Category: CategoryWord,
		Labels:      []string{"love", "heart"},
		Description: "Cross arms over chest", Duration: 1.5},
	{ID: "phrase_iloveyou", Text: "I love you", Category: CategoryPhrase,
		Labels:      []string{"i_love_you", "ily"},
		Description: "ILY handshape (thumb, index, pinky)", Duration: 1.5},
	{ID: "word_what", Text: "What?", Category: CategoryWord,
		Labels:      []string{"what"},
		Description: "Hands palm up, shake slightly", Duration: 1.5},
	{ID: "word_where", Text: "Where?", Category: CategoryWord,
		Labels:      []string{"where"},
		Description: "Shake pointed index finger", Duration: 1.5},
	{ID: "word_how", Text: "How?", Category: CategoryWord,
		Labels:      []string{"how"},
		Description: "Backs of hands together, roll forward", Duration: 1.5},
	{ID: "word_name", Text: "Name", Category: CategoryWord,
		Labels:      []string{"name"},
		Description: "H hands tap each other", Duration: 1.5},
	{ID: "word_water", Text: "Water", Category: CategoryWord,
		Labels:      []string{"water"},
		Description: "W hand taps chin", Duration: 1.5},
	{ID: "word_food", Text: "Food", Category: CategoryWord,
		Labels:      []string{"food", "eat"},
		Description: "Flat O to mouth", Duration: 1.5},
}

var defaultControls = []SignDef{
	{ID: "ctrl_space", Text: " ", Category: CategoryControl,
		Labels: []string{"space", "_"}, Control: ControlSpace,
		DisplayText: "[SPACE]", Description: "Space between words"},
	{ID: "ctrl_backspace", Text: "[DELETE]", Category: CategoryControl,
		Labels: []string{"backspace", "delete"}, Control: ControlBackspace,
		DisplayText: "[DELETE]", Description: "Delete last character"},
	{ID: "ctrl_pause", Text: "[PAUSE]", Category: CategoryControl,
		Labels: []string{"pause", "word_break"}, Control: ControlWordBoundary,
		DisplayText: "[PAUSE]", Description: "Explicit word boundary"},
	{ID: "ctrl_enter", Text: "[ENTER]", Category: CategoryControl,
		Labels: []string{"enter", "newline"}, Control: ControlEnter,
		DisplayText: "[ENTER]", Description: "New line / confirm"},
}

var defaultPatterns = map[string]string{
	"HI":     "Hi",
	"BYE":    "Bye",
	"OK":     "OK",
	"YES":    "Yes",
	"NO":     "No",
	"HELP":   "Help",
	"STOP":   "Stop",
	"LOVE":   "Love",
	"THANK":  "Thank",
	"THANKS": "Thanks",
	"PLEASE": "Please",
	"SORRY":  "Sorry",
	"WATER":  "Water",
	"FOOD":   "Food",
	"NAME":   "Name",
	"HELLO":  "Hello",
	"GOOD":   "Good",
	"BAD":    "Bad",
	"HOW":    "How",
	"WHAT":   "What",
	"WHERE":  "Where",
	"WHEN":   "When",
	"WHO":    "Who",
	"WHY":    "Why",
}
