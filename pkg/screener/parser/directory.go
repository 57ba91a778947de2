package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// ErrMissingColumn indicates a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// ParseDirectory reads the directory sheet. Row 0 holds the headers; rows
// with an empty Symbol cell are skipped and a missing description is "".
func ParseDirectory(g *Grid) ([]models.SymbolEntry, error) {
	symbols := []models.SymbolEntry{}
	if g.Rows() == 0 {
		return symbols, nil
	}

	symbolCol, descCol := -1, -1
	for col := 0; col < g.Width(); col++ {
		switch g.Value(0, col) {
		case SymbolHeader:
			if symbolCol < 0 {
				symbolCol = col
			}
		case DescriptionHeader:
			if descCol < 0 {
				descCol = col
			}
		}
	}
	if symbolCol < 0 {
		return nil, fmt.Errorf("%w %q in sheet %q", ErrMissingColumn, SymbolHeader, g.Name)
	}

	for row := 1; row < g.Rows(); row++ {
		symbol := g.Value(row, symbolCol)
		if symbol == "" {
			continue
		}
		entry := models.SymbolEntry{Symbol: symbol}
		if descCol >= 0 {
			entry.Description = g.Value(row, descCol)
		}
		symbols = append(symbols, entry)
	}

	return symbols, nil
}
