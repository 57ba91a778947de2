package models

// Summary is the content of metadata.json.
type Summary struct {
	// GeneratedAt is the RFC 3339 generation timestamp.
	GeneratedAt string `json:"generatedAt"`
	// SourceFile is the workbook file name (no path).
	SourceFile string `json:"sourceFile"`
	// SymbolCount is the number of successfully parsed sheets.
	SymbolCount int `json:"symbolCount"`
	// Symbols lists the parsed sheet names in workbook order.
	Symbols []string `json:"symbols"`
}

// SheetFailure records a symbol sheet that could not be parsed.
type SheetFailure struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Error is the error message.
	Error string `json:"error"`
}
