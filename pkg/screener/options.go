// Package screener converts options-screener workbooks into the JSON files
// used by the web application.
package screener

import (
	"io"
	"log/slog"
	"time"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// Output file names.
const (
	SymbolsFile  = "symbols.json"
	DataFile     = "screener_data.json"
	MetadataFile = "metadata.json"
	ParquetFile  = "screener_data.parquet"
	SQLiteFile   = "screener.db"
)

// DirectorySheet is the name of the sheet listing all symbols.
const DirectorySheet = "Symbol List"

// Reporter receives progress events during a conversion.
type Reporter interface {
	ReadingWorkbook(path string)
	SymbolsWritten(count int, path string)
	SheetSkipped(failure models.SheetFailure)
	Finished(result *Result)
}

// Options configures a conversion.
type Options struct {
	// IncludeUnlisted appends parsed sheets missing from the directory to
	// symbols.json with an empty description.
	IncludeUnlisted bool
	// SkipEmpty treats sheets without expiration rows as failures.
	SkipEmpty bool
	// Parquet additionally writes screener_data.parquet.
	Parquet bool
	// SQLite additionally writes screener.db.
	SQLite bool
	// Reporter receives progress events. Nil disables reporting.
	Reporter Reporter
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// Now returns the generation time. Nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) reporter() Reporter {
	if o.Reporter != nil {
		return o.Reporter
	}
	return nopReporter{}
}

type nopReporter struct{}

func (nopReporter) ReadingWorkbook(string)           {}
func (nopReporter) SymbolsWritten(int, string)       {}
func (nopReporter) SheetSkipped(models.SheetFailure) {}
func (nopReporter) Finished(*Result)                 {}
