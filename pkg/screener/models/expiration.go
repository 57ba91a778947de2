package models

import "strconv"

// LimitPair is a lower/upper bound; either side may be absent.
type LimitPair struct {
	Lower *float64 `json:"lower"`
	Upper *float64 `json:"upper"`
}

// Limits holds the seven historical limit categories.
type Limits struct {
	NeverLost     LimitPair `json:"neverLost"`
	Every10Years  LimitPair `json:"every10Years"`
	Every5Years   LimitPair `json:"every5Years"`
	Every2_5Years LimitPair `json:"every2_5Years"`
	Every1Year    LimitPair `json:"every1Year"`
	Every6Months  LimitPair `json:"every6Months"`
	OnePercent    LimitPair `json:"onePercent"`
}

// ScreeningLimits holds the two categories used for screening.
type ScreeningLimits struct {
	NeverLost  LimitPair `json:"neverLost"`
	OnePercent LimitPair `json:"onePercent"`
}

// ExpirationRow is one option expiration of a symbol sheet.
type ExpirationRow struct {
	// Expiration is the expiration date (YYYY-MM-DD).
	Expiration string `json:"expiration"`
	// DaysToExpiry is the number of days until expiration.
	DaysToExpiry int `json:"daysToExpiry"`
	// Limits holds the historical limit categories.
	Limits Limits `json:"limits"`
	// ScreeningLimits holds the screening categories.
	ScreeningLimits ScreeningLimits `json:"screeningLimits"`
	// PercentileLimits maps a percentile key ("0.05" ... "0.45") to its band.
	PercentileLimits map[string]LimitPair `json:"percentileLimits"`
	// Median is omitted when the source cell is empty.
	Median *float64 `json:"median,omitempty"`
}

// Bound groups used when flattening an ExpirationRow.
const (
	GroupLimits          = "limits"
	GroupScreeningLimits = "screeningLimits"
	GroupPercentiles     = "percentileLimits"
)

// Category names a limit category and its display label.
type Category struct {
	Key   string
	Label string
}

// LimitCategories lists the Limits fields in column order.
var LimitCategories = []Category{
	{Key: "neverLost", Label: "Never Lost"},
	{Key: "every10Years", Label: "Every 10 Years"},
	{Key: "every5Years", Label: "Every 5 Years"},
	{Key: "every2_5Years", Label: "Every 2.5 Years"},
	{Key: "every1Year", Label: "Every 1 Year"},
	{Key: "every6Months", Label: "Every 6 Months"},
	{Key: "onePercent", Label: "1% Raw"},
}

// PercentileLevels lists the percentile bands in column order.
var PercentileLevels = []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45}

// PercentileKey returns the map key for a percentile level, e.g. "0.1".
func PercentileKey(level float64) string {
	return strconv.FormatFloat(level, 'f', -1, 64)
}

// Pairs returns the limit pairs in LimitCategories order.
func (l Limits) Pairs() []LimitPair {
	return []LimitPair{
		l.NeverLost,
		l.Every10Years,
		l.Every5Years,
		l.Every2_5Years,
		l.Every1Year,
		l.Every6Months,
		l.OnePercent,
	}
}

// Bound is a single named LimitPair of an ExpirationRow.
type Bound struct {
	Group string
	Key   string
	LimitPair
}

// Bounds flattens every pair of the row in a stable order: limits,
// screening limits, then percentile bands in ascending level.
func (r ExpirationRow) Bounds() []Bound {
	var bounds []Bound
	for i, p := range r.Limits.Pairs() {
		bounds = append(bounds, Bound{Group: GroupLimits, Key: LimitCategories[i].Key, LimitPair: p})
	}
	bounds = append(bounds,
		Bound{Group: GroupScreeningLimits, Key: "neverLost", LimitPair: r.ScreeningLimits.NeverLost},
		Bound{Group: GroupScreeningLimits, Key: "onePercent", LimitPair: r.ScreeningLimits.OnePercent},
	)
	for _, level := range PercentileLevels {
		key := PercentileKey(level)
		if p, ok := r.PercentileLimits[key]; ok {
			bounds = append(bounds, Bound{Group: GroupPercentiles, Key: key, LimitPair: p})
		}
	}
	return bounds
}
