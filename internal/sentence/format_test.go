package sentence

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"hello", "Hello"},
		{"hello   you", "Hello you"},
		{"i", "I"},
		{"i want water", "I want water"},
		{"hi i am here", "Hi I am here"},
		{"i m fine", "I'm fine"},
		{"i dont know", "I don't know"},
		{"CANT stop", "Can't stop"},
		{"youre here", "You're here"},
		{"ill help", "I'll help"},
		{"Hello You", "Hello You"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"HELLO", "Hello"},
		{"x", "X"},
		{"wOrLd", "World"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
