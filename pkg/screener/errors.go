package screener

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrDirectorySheetNotFound indicates the workbook has no directory sheet.
var ErrDirectorySheetNotFound = errors.New("directory sheet not found")

// ErrSheetNotFound indicates a requested symbol sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoExpirations indicates a symbol sheet parsed without any expiration rows.
var ErrNoExpirations = errors.New("no expiration rows")

// SheetError represents an error while reading or parsing one sheet.
type SheetError struct {
	SheetName string
	Component string // "read", "parse", "directory"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
