package screener

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ukaji3/screener-go/pkg/screener/export"
	"github.com/ukaji3/screener-go/pkg/screener/models"
	"github.com/ukaji3/screener-go/pkg/screener/output"
	"github.com/ukaji3/screener-go/pkg/screener/parser"
	"github.com/xuri/excelize/v2"
)

// Result describes a finished conversion.
type Result struct {
	// OutputDir is the directory the files were written to.
	OutputDir string
	// Symbols is the content of symbols.json.
	Symbols []models.SymbolEntry
	// Data holds the successfully parsed sheets in workbook order.
	Data *models.ScreenerData
	// Failures lists the sheets that were skipped.
	Failures []models.SheetFailure
	// Summary is the content of metadata.json.
	Summary models.Summary
	// Files lists the written file paths in write order.
	Files []string
}

// sheetOutcome is the result of parsing one symbol sheet.
type sheetOutcome struct {
	name      string
	usedRange string
	cells     int
	record    *models.ScreenerRecord
	err       error
}

// Convert reads the workbook at inputPath and writes symbols.json,
// screener_data.json and metadata.json to outputDir. Symbol sheets that fail
// to parse are recorded in Result.Failures; every other error aborts the run.
func Convert(ctx context.Context, inputPath, outputDir string, opts Options) (*Result, error) {
	log := opts.logger()
	rep := opts.reporter()

	rep.ReadingWorkbook(inputPath)
	f, err := openWorkbook(inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	// Directory sheet
	sheetList := f.GetSheetList()
	if !slices.Contains(sheetList, DirectorySheet) {
		return nil, fmt.Errorf("%w: %q", ErrDirectorySheetNotFound, DirectorySheet)
	}
	symbols, err := readDirectory(f)
	if err != nil {
		return nil, err
	}
	result.Symbols = symbols

	symbolsPath := filepath.Join(outputDir, SymbolsFile)
	if !opts.IncludeUnlisted {
		if err := result.write(symbolsPath, symbols, false); err != nil {
			return nil, err
		}
		rep.SymbolsWritten(len(symbols), symbolsPath)
	}

	// Symbol sheets
	var outcomes []sheetOutcome
	for _, name := range sheetList {
		if name == DirectorySheet {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		outcome := parseSheet(f, name, opts.SkipEmpty)
		log.Debug("sheet parsed", "sheet", name, "range", outcome.usedRange, "cells", outcome.cells,
			"ok", outcome.err == nil, "elapsed", time.Since(start))
		if outcome.err != nil {
			log.Warn("sheet skipped", "sheet", name, "error", outcome.err)
			rep.SheetSkipped(outcome.failure())
		}
		outcomes = append(outcomes, outcome)
	}

	data := models.NewScreenerData()
	for _, o := range outcomes {
		if o.err != nil {
			result.Failures = append(result.Failures, o.failure())
			continue
		}
		data.Set(o.name, *o.record)
	}
	result.Data = data

	if opts.IncludeUnlisted {
		result.Symbols = appendUnlisted(symbols, data.Names())
		if err := result.write(symbolsPath, result.Symbols, false); err != nil {
			return nil, err
		}
		rep.SymbolsWritten(len(result.Symbols), symbolsPath)
	}

	if err := result.write(filepath.Join(outputDir, DataFile), data, false); err != nil {
		return nil, err
	}

	result.Summary = models.Summary{
		GeneratedAt: opts.now().Format(time.RFC3339Nano),
		SourceFile:  filepath.Base(inputPath),
		SymbolCount: data.Len(),
		Symbols:     data.Names(),
	}
	if err := result.write(filepath.Join(outputDir, MetadataFile), result.Summary, true); err != nil {
		return nil, err
	}

	if opts.Parquet {
		path := filepath.Join(outputDir, ParquetFile)
		n, err := export.WriteParquet(path, data)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", ParquetFile, err)
		}
		log.Info("parquet export written", "path", path, "rows", n)
		result.Files = append(result.Files, path)
	}

	if opts.SQLite {
		path := filepath.Join(outputDir, SQLiteFile)
		if err := export.WriteSQLite(ctx, path, result.Symbols, data); err != nil {
			return nil, fmt.Errorf("write %s: %w", SQLiteFile, err)
		}
		log.Info("sqlite export written", "path", path)
		result.Files = append(result.Files, path)
	}

	rep.Finished(result)
	return result, nil
}

// InspectSheet parses a single symbol sheet of the workbook at inputPath.
func InspectSheet(inputPath, sheetName string) (*models.ScreenerRecord, error) {
	f, err := openWorkbook(inputPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	o := parseSheet(f, sheetName, false)
	if o.err != nil {
		return nil, o.err
	}
	return o.record, nil
}

func openWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	return f, nil
}

func readDirectory(f *excelize.File) ([]models.SymbolEntry, error) {
	g, err := parser.ReadGrid(f, DirectorySheet)
	if err != nil {
		return nil, NewSheetError(DirectorySheet, "read", err)
	}
	symbols, err := parser.ParseDirectory(g)
	if err != nil {
		return nil, NewSheetError(DirectorySheet, "directory", err)
	}
	return symbols, nil
}

func parseSheet(f *excelize.File, name string, skipEmpty bool) sheetOutcome {
	g, err := parser.ReadGrid(f, name)
	if err != nil {
		return sheetOutcome{name: name, err: NewSheetError(name, "read", err)}
	}
	o := sheetOutcome{name: name}
	o.usedRange, o.cells = g.UsedRange()

	record, err := parser.ParseSymbolSheet(g, name)
	switch {
	case err != nil:
		o.err = NewSheetError(name, "parse", err)
	case skipEmpty && len(record.Expirations) == 0:
		o.err = NewSheetError(name, "parse", ErrNoExpirations)
	default:
		o.record = record
	}
	return o
}

func (o sheetOutcome) failure() models.SheetFailure {
	return models.SheetFailure{Sheet: o.name, Error: failureMessage(o.err)}
}

// failureMessage drops the sheet prefix of a SheetError; the sheet name is
// reported separately.
func failureMessage(err error) string {
	var se *SheetError
	if errors.As(err, &se) {
		return se.Err.Error()
	}
	return err.Error()
}

// appendUnlisted adds an entry for every parsed sheet not already listed.
func appendUnlisted(symbols []models.SymbolEntry, sheets []string) []models.SymbolEntry {
	listed := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		listed[s.Symbol] = true
	}

	out := append([]models.SymbolEntry{}, symbols...)
	for _, name := range sheets {
		if !listed[name] {
			out = append(out, models.SymbolEntry{Symbol: name})
			listed[name] = true
		}
	}
	return out
}

func (r *Result) write(path string, v any, pretty bool) error {
	if err := output.WriteFile(path, v, pretty); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	r.Files = append(r.Files, path)
	return nil
}
