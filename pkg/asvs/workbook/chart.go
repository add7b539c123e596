package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"asvsgen/pkg/asvs/models"
)

// chartAnchor places the fulfilment chart to the right of the summary tables.
const chartAnchor = "I2"

// chartSeries defines the stacked series in plot order. The two muted grays
// replace the stronger cell tints so unanswered bars stay in the background.
var chartSeries = []struct {
	name  string
	col   string
	color string
}{
	{StatusYes, "C", "ECF1DF"},
	{StatusNo, "D", "FFC7CE"},
	{StatusPartially, "E", "FFEB9C"},
	{StatusNotApplicable, "F", "D9D9D9"},
	{"No Answer", "G", "F2F2F2"},
}

// addChart draws a percent-stacked bar chart over the whole-catalog summary
// table, one bar per level.
func addChart(f *excelize.File, catalog *models.Catalog) error {
	headerRow := totalHeadingRow(len(catalog.Chapters)) + 1
	firstRow := headerRow + 1
	lastRow := headerRow + 3

	series := make([]excelize.ChartSeries, 0, len(chartSeries))
	for _, cs := range chartSeries {
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$%d", SummarySheet, cs.col, headerRow),
			Categories: fmt.Sprintf("%s!$A$%d:$A$%d", SummarySheet, firstRow, lastRow),
			Values:     fmt.Sprintf("%s!$%s$%d:$%s$%d", SummarySheet, cs.col, firstRow, cs.col, lastRow),
			Fill:       excelize.Fill{Color: []string{cs.color}},
		})
	}

	return f.AddChart(SummarySheet, chartAnchor, &excelize.Chart{
		Type:     excelize.BarPercentStacked,
		Series:   series,
		Title:    []excelize.RichTextRun{{Text: "Fulfillment Summary"}},
		XAxis:    excelize.ChartAxis{None: true},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
	})
}
