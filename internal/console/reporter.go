package console

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ukaji3/screener-go/pkg/screener"
	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// Reporter prints conversion progress as styled lines.
type Reporter struct {
	w io.Writer
}

var _ screener.Reporter = (*Reporter)(nil)

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// ReadingWorkbook prints the workbook being opened.
func (r *Reporter) ReadingWorkbook(path string) {
	fmt.Fprintln(r.w, TitleStyle.Render(fmt.Sprintf("Reading %s...", path)))
}

// SymbolsWritten prints the symbols.json file name and entry count.
func (r *Reporter) SymbolsWritten(count int, path string) {
	fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf("Saved %s with %d symbols", filepath.Base(path), count)))
}

// SheetSkipped prints a skipped sheet with its error.
func (r *Reporter) SheetSkipped(failure models.SheetFailure) {
	fmt.Fprintln(r.w, WarnStyle.Render(fmt.Sprintf("  Skipped %s: %s", failure.Sheet, failure.Error)))
}

// Finished prints the converted and skipped counts followed by the summary
// tables.
func (r *Reporter) Finished(result *screener.Result) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, SuccessStyle.Render(fmt.Sprintf("Converted %d symbols", result.Summary.SymbolCount)))
	fmt.Fprintln(r.w, MutedStyle.Render(fmt.Sprintf("Skipped %d sheets", len(result.Failures))))
	fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf("Output saved to %s", filepath.Join(result.OutputDir, screener.DataFile))))
	fmt.Fprintln(r.w)
	RenderSummary(r.w, result)
}

// RenderSummary prints the written files and any skipped sheets as tables.
func RenderSummary(w io.Writer, result *screener.Result) {
	tw := newTable(w)
	tw.AppendHeader(table.Row{"FILE", "PATH"})
	for _, path := range result.Files {
		tw.AppendRow(table.Row{filepath.Base(path), path})
	}
	tw.Render()

	if len(result.Failures) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	tw.AppendHeader(table.Row{"SKIPPED SHEET", "ERROR"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, WidthMax: 80}})
	for _, f := range result.Failures {
		tw.AppendRow(table.Row{f.Sheet, f.Error})
	}
	tw.Render()
}

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false
	return tw
}
