// Package models defines the JSON data structures produced by the converter.
package models

// SymbolEntry is one row of the directory sheet.
type SymbolEntry struct {
	// Symbol is the ticker symbol.
	Symbol string `json:"symbol"`
	// Description is the symbol description ("" when absent).
	Description string `json:"description"`
}
