package models

// DefaultCategoryName is used when a symbol sheet has no category label.
const DefaultCategoryName = "Never Lost"

// Metadata holds the header values of a symbol sheet.
type Metadata struct {
	// Symbol is the sheet name the record was parsed from.
	Symbol string `json:"symbol"`
	// PriorClose is the previous closing price.
	PriorClose *float64 `json:"priorClose"`
	// Signal is the screener signal value.
	Signal *float64 `json:"signal"`
	// TodayDate is the as-of date (YYYY-MM-DD).
	TodayDate *string `json:"todayDate"`
	// PD1PercentLL is the one-day 1% lower limit.
	PD1PercentLL *float64 `json:"pd1PercentLL"`
	// PD1PercentUL is the one-day 1% upper limit.
	PD1PercentUL *float64 `json:"pd1PercentUL"`
}

// ScreenerRecord is the parsed content of one symbol sheet.
type ScreenerRecord struct {
	// Metadata holds the header values.
	Metadata Metadata `json:"metadata"`
	// CategoryName is the label of the primary limit category.
	CategoryName string `json:"categoryName"`
	// Expirations lists expiration rows in sheet order.
	Expirations []ExpirationRow `json:"expirations"`
}
