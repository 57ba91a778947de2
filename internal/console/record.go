package console

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/screener-go/pkg/screener/models"
)

// RenderRecord prints a record's metadata followed by one row per
// expiration. With percentiles set, the columns are the percentile bands
// instead of the limit categories.
func RenderRecord(w io.Writer, record *models.ScreenerRecord, percentiles bool) {
	md := record.Metadata
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("%s  %s", md.Symbol, record.CategoryName)))
	fmt.Fprintln(w, MutedStyle.Render(fmt.Sprintf("Prior close %s  Signal %s  As of %s  1-day 1%% %s / %s",
		formatNumber(md.PriorClose), formatNumber(md.Signal), formatText(md.TodayDate),
		formatNumber(md.PD1PercentLL), formatNumber(md.PD1PercentUL))))
	fmt.Fprintln(w)

	tw := newTable(w)
	hdr := table.Row{"EXPIRATION", "DTE"}
	if percentiles {
		for _, level := range models.PercentileLevels {
			hdr = append(hdr, strconv.Itoa(int(math.Round(level*100)))+"%")
		}
	} else {
		for _, c := range models.LimitCategories {
			hdr = append(hdr, c.Label)
		}
	}
	hdr = append(hdr, "MEDIAN")
	tw.AppendHeader(hdr)

	cfgs := make([]table.ColumnConfig, 0, len(hdr)-1)
	for i := 2; i <= len(hdr); i++ {
		cfgs = append(cfgs, table.ColumnConfig{Number: i, Align: text.AlignRight, AlignHeader: text.AlignRight})
	}
	tw.SetColumnConfigs(cfgs)

	for _, exp := range record.Expirations {
		row := table.Row{exp.Expiration, exp.DaysToExpiry}
		if percentiles {
			for _, level := range models.PercentileLevels {
				p, ok := exp.PercentileLimits[models.PercentileKey(level)]
				if !ok {
					row = append(row, "")
					continue
				}
				row = append(row, formatPair(p))
			}
		} else {
			for _, p := range exp.Limits.Pairs() {
				row = append(row, formatPair(p))
			}
		}
		row = append(row, formatNumber(exp.Median))
		tw.AppendRow(row)
	}
	tw.Render()
}

func formatPair(p models.LimitPair) string {
	return formatNumber(p.Lower) + " - " + formatNumber(p.Upper)
}

func formatNumber(v *float64) string {
	if v == nil {
		return "—"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatText(s *string) string {
	if s == nil {
		return "—"
	}
	return *s
}
