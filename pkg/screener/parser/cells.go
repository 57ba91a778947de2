package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumber indicates a cell that should hold a number does not.
var ErrNotNumber = errors.New("not a number")

// CellError reports a cell whose value could not be converted.
type CellError struct {
	// Cell is the A1 reference of the cell.
	Cell string
	// Value is the raw cell value.
	Value string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %s: cannot convert %q: %v", e.Cell, e.Value, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// missingMarkers are cell values read as missing: Excel error codes, which
// excelize returns verbatim for error cells, and the usual "not available"
// spellings.
var missingMarkers = map[string]bool{
	"#NULL!": true, "#DIV/0!": true, "#VALUE!": true, "#REF!": true,
	"#NAME?": true, "#NUM!": true, "#N/A": true, "#GETTING_DATA": true,
	"#SPILL!": true, "#CALC!": true, "#FIELD!": true, "#BLOCKED!": true,
	"#CONNECT!": true, "#BUSY!": true, "#UNKNOWN!": true,

	"#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true,
	"<NA>": true, "N/A": true, "NA": true, "NULL": true, "NaN": true,
	"None": true, "n/a": true, "nan": true, "null": true,
}

// isMissing reports whether the cell at (row, col) is empty, out of range or
// holds a missing-value marker.
func isMissing(g *Grid, row, col int) bool {
	return missingMarkers[strings.TrimSpace(g.Value(row, col))] || g.IsEmpty(row, col)
}

// parseNumber parses a raw cell value as a finite float.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumber
	}
	return f, nil
}

// readOptionalNumber returns nil for a missing cell, the parsed value for a
// numeric cell, and a CellError otherwise.
func readOptionalNumber(g *Grid, row, col int) (*float64, error) {
	if isMissing(g, row, col) {
		return nil, nil
	}
	raw := g.Value(row, col)
	f, err := parseNumber(raw)
	if err != nil {
		return nil, &CellError{Cell: CellName(row, col), Value: raw, Err: err}
	}
	return &f, nil
}

// readOptionalString returns nil for a missing cell and the raw value otherwise.
func readOptionalString(g *Grid, row, col int) *string {
	if isMissing(g, row, col) {
		return nil
	}
	raw := g.Value(row, col)
	return &raw
}

// readOptionalDate returns nil for a missing cell and the cell's date string
// otherwise.
func readOptionalDate(g *Grid, row, col int) *string {
	if isMissing(g, row, col) {
		return nil
	}
	s := formatDate(g, row, col)
	return &s
}

// readPair reads a lower/upper pair from two adjacent columns. Each side is
// checked independently.
func readPair(g *Grid, row, lowerCol int) (lower, upper *float64, err error) {
	if lower, err = readOptionalNumber(g, row, lowerCol); err != nil {
		return nil, nil, err
	}
	if upper, err = readOptionalNumber(g, row, lowerCol+1); err != nil {
		return nil, nil, err
	}
	return lower, upper, nil
}
