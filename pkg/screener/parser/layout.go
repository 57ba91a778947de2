package parser

// Directory sheet headers.
const (
	SymbolHeader      = "Symbol"
	DescriptionHeader = "Symbol Description"
)

// Symbol sheet coordinates (0-based). These are fixed by the workbook layout.
const (
	// Metadata header row.
	metadataRow      = 1
	colPD1PercentLL  = 17
	colPD1PercentUL  = 18
	colPriorClose    = 19
	colSignal        = 20
	colTodayDate     = 22
	categoryRow      = 3
	categoryCol      = 2
	firstDataRow     = 5
	colExpiration    = 0
	colDaysToExpiry  = 1
	colNeverLost     = 2
	colEvery10Years  = 4
	colEvery5Years   = 6
	colEvery2_5Years = 8
	colEvery1Year    = 10
	colEvery6Months  = 12
	colOnePercent    = 14

	colScreenNeverLost  = 17
	colScreenOnePercent = 19

	// Percentile band i occupies columns percentileBaseCol+i*percentileStride
	// and the one after it.
	percentileBaseCol = 23
	percentileStride  = 2

	colMedian = 41
)
