package parser

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// ErrEmptySheet indicates a symbol sheet without any cells.
var ErrEmptySheet = errors.New("empty sheet")

// ErrLayout indicates a sheet too small to hold the symbol sheet layout.
var ErrLayout = errors.New("sheet does not match the symbol sheet layout")

// limitColumns maps each Limits field to the column of its lower bound.
var limitColumns = []struct {
	lowerCol int
	field    func(*models.Limits) *models.LimitPair
}{
	{colNeverLost, func(l *models.Limits) *models.LimitPair { return &l.NeverLost }},
	{colEvery10Years, func(l *models.Limits) *models.LimitPair { return &l.Every10Years }},
	{colEvery5Years, func(l *models.Limits) *models.LimitPair { return &l.Every5Years }},
	{colEvery2_5Years, func(l *models.Limits) *models.LimitPair { return &l.Every2_5Years }},
	{colEvery1Year, func(l *models.Limits) *models.LimitPair { return &l.Every1Year }},
	{colEvery6Months, func(l *models.Limits) *models.LimitPair { return &l.Every6Months }},
	{colOnePercent, func(l *models.Limits) *models.LimitPair { return &l.OnePercent }},
}

var screeningColumns = []struct {
	lowerCol int
	field    func(*models.ScreeningLimits) *models.LimitPair
}{
	{colScreenNeverLost, func(l *models.ScreeningLimits) *models.LimitPair { return &l.NeverLost }},
	{colScreenOnePercent, func(l *models.ScreeningLimits) *models.LimitPair { return &l.OnePercent }},
}

// ParseSymbolSheet parses a symbol sheet into a ScreenerRecord. Sheets that
// do not reach the category row or the today-date column fail with
// ErrLayout. Rows without an expiration date or a numeric days-to-expiry
// value are dropped; any other unconvertible numeric cell fails the whole
// sheet. Missing-value markers such as #N/A read as empty cells.
func ParseSymbolSheet(g *Grid, symbol string) (*models.ScreenerRecord, error) {
	if g.Rows() == 0 {
		return nil, ErrEmptySheet
	}
	if g.Rows() <= categoryRow || g.Width() <= colTodayDate {
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrLayout, g.Rows(), g.Width())
	}

	metadata, err := parseMetadata(g, symbol)
	if err != nil {
		return nil, err
	}

	record := &models.ScreenerRecord{
		Metadata:     metadata,
		CategoryName: models.DefaultCategoryName,
		Expirations:  []models.ExpirationRow{},
	}
	if name := readOptionalString(g, categoryRow, categoryCol); name != nil {
		record.CategoryName = *name
	}

	for row := firstDataRow; row < g.Rows(); row++ {
		exp, ok, err := parseExpirationRow(g, row)
		if err != nil {
			return nil, err
		}
		if ok {
			record.Expirations = append(record.Expirations, exp)
		}
	}

	return record, nil
}

func parseMetadata(g *Grid, symbol string) (models.Metadata, error) {
	md := models.Metadata{
		Symbol:    symbol,
		TodayDate: readOptionalDate(g, metadataRow, colTodayDate),
	}

	numbers := []struct {
		col int
		dst **float64
	}{
		{colPriorClose, &md.PriorClose},
		{colSignal, &md.Signal},
		{colPD1PercentLL, &md.PD1PercentLL},
		{colPD1PercentUL, &md.PD1PercentUL},
	}
	for _, n := range numbers {
		v, err := readOptionalNumber(g, metadataRow, n.col)
		if err != nil {
			return models.Metadata{}, err
		}
		*n.dst = v
	}

	return md, nil
}

// parseExpirationRow returns ok=false for rows that are dropped.
func parseExpirationRow(g *Grid, row int) (models.ExpirationRow, bool, error) {
	if isMissing(g, row, colExpiration) {
		return models.ExpirationRow{}, false, nil
	}
	expiration := formatDate(g, row, colExpiration)

	dte, err := parseNumber(g.Value(row, colDaysToExpiry))
	if err != nil {
		return models.ExpirationRow{}, false, nil
	}

	exp := models.ExpirationRow{
		Expiration:       expiration,
		DaysToExpiry:     int(math.Trunc(dte)),
		PercentileLimits: make(map[string]models.LimitPair),
	}

	for _, lc := range limitColumns {
		if err := readInto(g, row, lc.lowerCol, lc.field(&exp.Limits)); err != nil {
			return models.ExpirationRow{}, false, err
		}
	}
	for _, sc := range screeningColumns {
		if err := readInto(g, row, sc.lowerCol, sc.field(&exp.ScreeningLimits)); err != nil {
			return models.ExpirationRow{}, false, err
		}
	}

	for i, level := range models.PercentileLevels {
		lowerCol := percentileBaseCol + i*percentileStride
		if lowerCol+1 >= g.Width() {
			continue
		}
		var pair models.LimitPair
		if err := readInto(g, row, lowerCol, &pair); err != nil {
			return models.ExpirationRow{}, false, err
		}
		exp.PercentileLimits[models.PercentileKey(level)] = pair
	}

	if colMedian < g.Width() {
		median, err := readOptionalNumber(g, row, colMedian)
		if err != nil {
			return models.ExpirationRow{}, false, err
		}
		exp.Median = median
	}

	return exp, true, nil
}

func readInto(g *Grid, row, lowerCol int, dst *models.LimitPair) error {
	lower, upper, err := readPair(g, row, lowerCol)
	if err != nil {
		return err
	}
	dst.Lower, dst.Upper = lower, upper
	return nil
}
