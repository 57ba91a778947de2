package models

import (
	"bytes"
	"encoding/json"
)

// ScreenerData maps sheet names to records and keeps workbook order when
// serialized.
type ScreenerData struct {
	names   []string
	records map[string]ScreenerRecord
}

// NewScreenerData returns an empty ScreenerData.
func NewScreenerData() *ScreenerData {
	return &ScreenerData{records: make(map[string]ScreenerRecord)}
}

// Set stores a record. A new name is appended to the order; an existing name
// keeps its position.
func (d *ScreenerData) Set(name string, record ScreenerRecord) {
	if _, ok := d.records[name]; !ok {
		d.names = append(d.names, name)
	}
	d.records[name] = record
}

// Get returns the record for name.
func (d *ScreenerData) Get(name string) (ScreenerRecord, bool) {
	r, ok := d.records[name]
	return r, ok
}

// Names returns the sheet names in insertion order.
func (d *ScreenerData) Names() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Len returns the number of records.
func (d *ScreenerData) Len() int {
	return len(d.names)
}

// MarshalJSON writes the records as a JSON object in insertion order.
func (d *ScreenerData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(name); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(d.records[name]); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
