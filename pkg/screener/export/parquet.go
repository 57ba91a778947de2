// Package export writes parsed screener data to tabular formats.
package export

import (
	"github.com/parquet-go/parquet-go"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// BoundRecord is the Parquet schema: one row per limit pair of an
// expiration. Absent bounds are null.
type BoundRecord struct {
	Symbol       string   `parquet:"symbol"`
	Expiration   string   `parquet:"expiration"`
	DaysToExpiry int64    `parquet:"days_to_expiry"`
	Group        string   `parquet:"group"`
	Key          string   `parquet:"key"`
	Lower        *float64 `parquet:"lower"`
	Upper        *float64 `parquet:"upper"`
	Median       *float64 `parquet:"median"`
}

// Flatten converts the data into BoundRecords, ordered by symbol (workbook
// order), expiration (sheet order) and bound.
func Flatten(data *models.ScreenerData) []BoundRecord {
	var records []BoundRecord
	for _, symbol := range data.Names() {
		record, _ := data.Get(symbol)
		for _, exp := range record.Expirations {
			for _, b := range exp.Bounds() {
				records = append(records, BoundRecord{
					Symbol:       symbol,
					Expiration:   exp.Expiration,
					DaysToExpiry: int64(exp.DaysToExpiry),
					Group:        b.Group,
					Key:          b.Key,
					Lower:        b.Lower,
					Upper:        b.Upper,
					Median:       exp.Median,
				})
			}
		}
	}
	return records
}

// WriteParquet writes the flattened data to path and returns the row count.
func WriteParquet(path string, data *models.ScreenerData) (int, error) {
	records := Flatten(data)
	if err := parquet.WriteFile(path, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
