package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a corpus from a JSON array file.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %q: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corpus: unmarshal %q: %w", path, err)
	}
	return records, nil
}

// Save writes a corpus as an indented JSON array. HTML escaping is off so
// the CJK text round-trips byte-identically.
func Save(path string, records []Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("corpus: marshal %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("corpus: write %q: %w", path, err)
	}
	return nil
}

// SaveStrict writes the strict training format: task type tags stripped.
func SaveStrict(path string, records []Record) error {
	return Save(path, Strip(records))
}
