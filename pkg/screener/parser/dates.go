package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// dateLayout is the output format for every date field.
const dateLayout = "2006-01-02"

// dateTextLen is the length of a YYYY-MM-DD prefix.
const dateTextLen = 10

// formatDate renders a non-empty cell as a date. Date-formatted numbers are
// converted from their serial value; anything else keeps the first ten
// characters of its text.
func formatDate(g *Grid, row, col int) string {
	raw := g.Value(row, col)
	if g.IsDate(row, col) {
		if serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, g.date1904); err == nil {
				return t.Format(dateLayout)
			}
		}
	}
	return truncate(raw, dateTextLen)
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
