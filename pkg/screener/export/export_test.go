package export

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

func ptr(v float64) *float64 { return &v }

func testData() *models.ScreenerData {
	median := 101.25
	exp := models.ExpirationRow{
		Expiration:   "2024-03-15",
		DaysToExpiry: 3,
		Limits: models.Limits{
			NeverLost: models.LimitPair{Lower: ptr(90), Upper: ptr(110)},
		},
		ScreeningLimits: models.ScreeningLimits{
			OnePercent: models.LimitPair{Lower: ptr(95)},
		},
		PercentileLimits: map[string]models.LimitPair{
			"0.25": {Lower: ptr(99), Upper: ptr(102)},
		},
		Median: &median,
	}

	data := models.NewScreenerData()
	data.Set("AAA", models.ScreenerRecord{
		Metadata:     models.Metadata{Symbol: "AAA", PriorClose: ptr(100)},
		CategoryName: models.DefaultCategoryName,
		Expirations:  []models.ExpirationRow{exp},
	})
	data.Set("BBB", models.ScreenerRecord{
		Metadata:     models.Metadata{Symbol: "BBB"},
		CategoryName: models.DefaultCategoryName,
		Expirations:  []models.ExpirationRow{},
	})
	return data
}

func TestFlatten(t *testing.T) {
	records := Flatten(testData())

	// 7 limits + 2 screening limits + 1 percentile band; BBB has no rows.
	if len(records) != 10 {
		t.Fatalf("Expected 10 records, got %d", len(records))
	}

	first := records[0]
	if first.Symbol != "AAA" || first.Group != models.GroupLimits || first.Key != "neverLost" {
		t.Errorf("first record = %+v", first)
	}
	if first.Lower == nil || *first.Lower != 90 || first.Median == nil || *first.Median != 101.25 {
		t.Errorf("first record values = %+v", first)
	}

	last := records[len(records)-1]
	if last.Group != models.GroupPercentiles || last.Key != "0.25" {
		t.Errorf("last record = %+v", last)
	}

	if records[1].Lower != nil || records[1].Upper != nil {
		t.Errorf("empty pair should stay null: %+v", records[1])
	}
}

func TestWriteParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")

	n, err := WriteParquet(path, testData())
	if err != nil {
		t.Fatalf("WriteParquet failed: %v", err)
	}
	if n != 10 {
		t.Errorf("Expected 10 rows written, got %d", n)
	}

	rows, err := parquet.ReadFile[BoundRecord](path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(rows) != n {
		t.Fatalf("Expected %d rows read, got %d", n, len(rows))
	}
	if rows[0].Key != "neverLost" || rows[0].Upper == nil || *rows[0].Upper != 110 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Lower != nil {
		t.Errorf("rows[1].Lower should be null, got %v", *rows[1].Lower)
	}
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	symbols := []models.SymbolEntry{
		{Symbol: "AAA", Description: "Test Co"},
		{Symbol: "BBB"},
		{Symbol: "CCC"},
	}
	ctx := context.Background()

	// A second run replaces the first instead of appending.
	for range 2 {
		if err := WriteSQLite(ctx, path, symbols, testData()); err != nil {
			t.Fatalf("WriteSQLite failed: %v", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	tests := []struct {
		query string
		want  int
	}{
		{"SELECT COUNT(*) FROM symbols", 3},
		{"SELECT COUNT(*) FROM records", 2},
		{"SELECT COUNT(*) FROM expirations", 1},
		{"SELECT COUNT(*) FROM bounds", 10},
		{"SELECT COUNT(*) FROM bounds WHERE lower IS NULL AND upper IS NULL", 7},
		{"SELECT COUNT(*) FROM records WHERE prior_close IS NULL", 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got int
			if err := db.QueryRowContext(ctx, tt.query).Scan(&got); err != nil {
				t.Fatalf("query failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, expected %d", got, tt.want)
			}
		})
	}

	var description string
	if err := db.QueryRowContext(ctx, "SELECT description FROM symbols WHERE position = 0").Scan(&description); err != nil {
		t.Fatal(err)
	}
	if description != "Test Co" {
		t.Errorf("description = %q, expected Test Co", description)
	}
}

func TestWriteSQLiteErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		path string
	}{
		{"missing directory", context.Background(), filepath.Join(t.TempDir(), "missing", "out.db")},
		{"cancelled", ctx, filepath.Join(t.TempDir(), "out.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteSQLite(tt.ctx, tt.path, nil, testData()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
