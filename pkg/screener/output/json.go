// Package output serializes converter results to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"os"
)

// ToJSON serializes v without HTML escaping. Pretty output is indented with
// two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes v and writes it to path, replacing any existing file.
func WriteFile(path string, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
