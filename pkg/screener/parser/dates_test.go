package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"m/d/yy h:mm", true},
		{"[$-409]mmm d, yyyy", true},
		{"hh:mm:ss", true},
		{"0.00", false},
		{"#,##0", false},
		{"General", false},
		{`0 "days"`, false},
		{`[Red]0.00`, false},
		{`\d0`, false},
	}

	for _, tt := range tests {
		result := isDateFormatCode(tt.code)
		if result != tt.expected {
			t.Errorf("isDateFormatCode(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2024-03-15 00:00:00", "2024-03-15"},
		{"2024-03-15", "2024-03-15"},
		{"short", "short"},
		{"2024年03月15日です", "2024年03月15日"},
	}

	for _, tt := range tests {
		result := truncate(tt.input, dateTextLen)
		if result != tt.expected {
			t.Errorf("truncate(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestFormatDateFromWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	f.SetCellValue(sheetName, "A2", "2024-03-15 00:00:00")
	f.SetCellValue(sheetName, "A3", 45366)

	tmpFile := filepath.Join(t.TempDir(), "dates.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	g, err := ReadGrid(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if !g.IsDate(0, 0) {
		t.Error("A1 should be detected as a date")
	}
	if got := formatDate(g, 0, 0); got != "2024-03-15" {
		t.Errorf("formatDate(A1) = %q, expected 2024-03-15", got)
	}

	if g.IsDate(1, 0) {
		t.Error("A2 is text and should not be a date")
	}
	if got := formatDate(g, 1, 0); got != "2024-03-15" {
		t.Errorf("formatDate(A2) = %q, expected 2024-03-15", got)
	}

	// A plain number keeps its text form
	if g.IsDate(2, 0) {
		t.Error("A3 has no date format and should not be a date")
	}
	if got := formatDate(g, 2, 0); got != "45366" {
		t.Errorf("formatDate(A3) = %q, expected 45366", got)
	}
}
