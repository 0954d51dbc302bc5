package cmd

import (
	"strings"
	"testing"

	"github.com/neeer4j/SignLang/internal/vocab"
)

func TestSignRow(t *testing.T) {
	tests := []struct {
		name string
		sign *vocab.SignDef
		want []string
	}{
		{
			name: "multi-label dynamic word",
			sign: &vocab.SignDef{
				Text: "Hello", Labels: []string{"hello", "wave", "hi"},
				Dynamic: true, Description: "Wave hand for hello",
			},
			want: []string{"hello,wave,hi", "Hello", "dynamic", "Wave hand for hello"},
		},
		{
			name: "static letter",
			sign: &vocab.SignDef{
				Text: "A", Labels: []string{"A", "a"}, Description: "ASL letter A",
			},
			want: []string{"A,a", "static", "ASL letter A"},
		},
		{
			name: "display text wins over text",
			sign: &vocab.SignDef{
				Text: " ", Labels: []string{"space"}, DisplayText: "[SPACE]",
			},
			want: []string{"space", "[SPACE]", "static"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := signRow(tt.sign)
			for _, want := range tt.want {
				if !strings.Contains(row, want) {
					t.Errorf("signRow = %q, missing %q", row, want)
				}
			}
		})
	}
}

func TestSignRowCoversDefaultVocabulary(t *testing.T) {
	v := vocab.New()
	for _, s := range append(v.Words(), v.Letters()...) {
		row := signRow(s)
		if !strings.Contains(row, s.Labels[0]) {
			t.Errorf("signRow(%s) = %q, missing label %q", s.ID, row, s.Labels[0])
		}
		if !strings.Contains(row, s.Display()) {
			t.Errorf("signRow(%s) = %q, missing display %q", s.ID, row, s.Display())
		}
	}
}
