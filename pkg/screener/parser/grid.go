// Package parser reads screener workbooks with excelize.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is a positional view of one sheet. Every row is padded to the width
// of the widest row, so a column index is valid for all rows or none.
type Grid struct {
	// Name is the sheet name.
	Name string

	rows     [][]string
	width    int
	date1904 bool
	isDate   func(row, col int) bool
}

// NewGrid builds a Grid from raw cell values. isDate reports whether a cell
// carries a date number format; nil means no cell does.
func NewGrid(name string, rows [][]string, isDate func(row, col int) bool) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}

	if isDate == nil {
		isDate = func(int, int) bool { return false }
	}

	return &Grid{
		Name:   name,
		rows:   padded,
		width:  width,
		isDate: isDate,
	}
}

// ReadGrid reads the raw cell values of a sheet. Numbers keep their stored
// representation (dates stay serial numbers) and date detection is deferred
// to the cell's number format.
func ReadGrid(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	// Style lookups are cached per style ID; most cells share a handful.
	dateStyles := make(map[int]bool)
	isDate := func(row, col int) bool {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return false
		}
		styleID, err := f.GetCellStyle(sheetName, cell)
		if err != nil {
			return false
		}
		if date, ok := dateStyles[styleID]; ok {
			return date
		}
		style, err := f.GetStyle(styleID)
		date := err == nil && isDateStyle(style)
		dateStyles[styleID] = date
		return date
	}

	g := NewGrid(sheetName, rows, isDate)
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		g.date1904 = *props.Date1904
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return len(g.rows)
}

// Width returns the number of columns of every row.
func (g *Grid) Width() int {
	return g.width
}

// Value returns the raw value at (row, col), or "" when out of range.
func (g *Grid) Value(row, col int) string {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.width {
		return ""
	}
	return g.rows[row][col]
}

// IsEmpty reports whether the cell at (row, col) is empty or out of range.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Value(row, col) == ""
}

// IsDate reports whether the cell at (row, col) holds a date-formatted number.
func (g *Grid) IsDate(row, col int) bool {
	if g.IsEmpty(row, col) {
		return false
	}
	return g.isDate(row, col)
}

// CellName returns the A1 reference of (row, col).
func CellName(row, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return ""
	}
	return name
}

// builtInDateFormats are the built-in number format IDs that render dates or
// times, including the CJK variants.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

func isDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return builtInDateFormats[style.NumFmt]
}

// isDateFormatCode reports whether a custom number format contains date or
// time tokens outside quoted literals, escapes and bracketed sections.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket, escaped := false, false, false
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			inQuote = r != '"'
		case inBracket:
			inBracket = r != ']'
		case r == '\\' || r == '_' || r == '*':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			b.WriteRune(r)
		}
	}

	stripped := strings.ToLower(b.String())
	if stripped == "general" {
		return false
	}
	return strings.ContainsAny(stripped, "ymdhs")
}
