package console

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ukaji3/screener-go/pkg/screener"
	"github.com/ukaji3/screener-go/pkg/screener/models"
)

func ptr(v float64) *float64 { return &v }

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(tt.level, &bytes.Buffer{})
			ctx := context.Background()
			if !logger.Enabled(ctx, tt.want) {
				t.Errorf("level %v should be enabled", tt.want)
			}
			if tt.want > slog.LevelDebug && logger.Enabled(ctx, tt.want-1) {
				t.Errorf("level below %v should be disabled", tt.want)
			}
		})
	}
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.ReadingWorkbook("screener.xlsx")
	r.SymbolsWritten(2, "/out/symbols.json")
	r.SheetSkipped(models.SheetFailure{Sheet: "BAD", Error: "cell G6: not a number"})
	r.Finished(&screener.Result{
		OutputDir: "/out",
		Summary:   models.Summary{SymbolCount: 1},
		Failures:  []models.SheetFailure{{Sheet: "BAD", Error: "cell G6: not a number"}},
		Files:     []string{"/out/symbols.json", "/out/screener_data.json"},
	})

	out := buf.String()
	for _, want := range []string{
		"Reading screener.xlsx...",
		"Saved symbols.json with 2 symbols",
		"Skipped BAD: cell G6: not a number",
		"Converted 1 symbols",
		"Skipped 1 sheets",
		"Output saved to /out/screener_data.json",
		"screener_data.json",
		"BAD",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderRecord(t *testing.T) {
	date := "2024-03-14"
	record := &models.ScreenerRecord{
		Metadata:     models.Metadata{Symbol: "AAA", PriorClose: ptr(100), TodayDate: &date},
		CategoryName: "Never Lost",
		Expirations: []models.ExpirationRow{{
			Expiration:   "2024-03-15",
			DaysToExpiry: 1,
			Limits: models.Limits{
				NeverLost: models.LimitPair{Lower: ptr(90), Upper: ptr(110.5)},
			},
			PercentileLimits: map[string]models.LimitPair{
				"0.1": {Lower: ptr(97), Upper: ptr(103)},
			},
		}},
	}

	var limits bytes.Buffer
	RenderRecord(&limits, record, false)
	for _, want := range []string{"AAA", "Never Lost", "100.00", "2024-03-14", "2024-03-15", "90.00 - 110.50"} {
		if !strings.Contains(limits.String(), want) {
			t.Errorf("limits output missing %q:\n%s", want, limits.String())
		}
	}

	var bands bytes.Buffer
	RenderRecord(&bands, record, true)
	for _, want := range []string{"10%", "45%", "97.00 - 103.00"} {
		if !strings.Contains(bands.String(), want) {
			t.Errorf("percentile output missing %q:\n%s", want, bands.String())
		}
	}
	if strings.Contains(bands.String(), "90.00 - 110.50") {
		t.Error("percentile output should not show limit categories")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "—"},
		{"integer", ptr(100), "100.00"},
		{"rounded", ptr(1.005), "1.00"},
		{"negative", ptr(-2.5), "-2.50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatNumber(tt.in); got != tt.want {
				t.Errorf("formatNumber() = %q, expected %q", got, tt.want)
			}
		})
	}
}
