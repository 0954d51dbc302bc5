package vocab

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// signsFile is the on-disk YAML shape for custom vocabulary.
type signsFile struct {
	Signs    []SignDef         `yaml:"signs"`
	Patterns map[string]string `yaml:"patterns"`
}

// LoadYAML merges custom signs and letter patterns from a YAML file
// into the vocabulary. Custom signs override defaults on label collisions.
func (v *Vocabulary) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading signs file: %w", err)
	}

	var file signsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing signs file: %w", err)
	}

	for i := range file.Signs {
		v.Add(&file.Signs[i])
	}
	for letters, word := range file.Patterns {
		v.AddPattern(letters, word)
	}
	return nil
}

// SaveYAML writes the word- and phrase-level signs plus all letter
// patterns to a YAML file, for editing and re-import.
func (v *Vocabulary) SaveYAML(path string) error {
	file := signsFile{Patterns: make(map[string]string, len(v.patterns))}
	for _, sign := range v.Words() {
		file.Signs = append(file.Signs, *sign)
	}
	for letters, word := range v.patterns {
		file.Patterns[letters] = word
	}

	out, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshaling signs: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing signs file: %w", err)
	}
	return nil
}

// LoadJSONL merges signs from a JSON-lines file, one SignDef per line.
// Malformed lines are skipped.
func (v *Vocabulary) LoadJSONL(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening signs file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var sign SignDef
		if err := json.Unmarshal([]byte(line), &sign); err != nil {
			continue
		}
		if sign.ID == "" || sign.Text == "" {
			continue
		}
		v.Add(&sign)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading signs file: %w", err)
	}
	return nil
}
