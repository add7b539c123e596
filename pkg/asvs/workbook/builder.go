// Package workbook renders a parsed ASVS catalog into an xlsx workbook:
// one worksheet per chapter with a constrained Fulfilled column, plus a
// leading Summary worksheet whose statistics stay live through formulas.
package workbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"asvsgen/pkg/asvs/models"
)

// SummarySheet is the name of the aggregate worksheet, always the first tab.
const SummarySheet = "Summary"

// maxSheetNameRunes truncates chapter names to fit the xlsx sheet name limit.
const maxSheetNameRunes = 30

const tableStyle = "TableStyleLight9"

const sheetZoom = 150.0

var chapterHeaders = []string{
	"Requirement ID",
	"Section",
	"Requirement",
	"Level 1",
	"Level 2",
	"Level 3",
	"Fulfilled",
	"Comment",
}

var chapterWidths = []struct {
	col   string
	width float64
}{
	{"A", 7},  // Requirement ID
	{"B", 50}, // Section
	{"C", 50}, // Requirement
	{"D", 10}, // Level 1
	{"E", 10}, // Level 2
	{"F", 10}, // Level 3
	{"G", 10}, // Fulfilled
	{"H", 50}, // Comment
}

// Build renders the catalog into a new in-memory workbook.
// The caller owns the returned file and is responsible for closing it.
func Build(catalog *models.Catalog) (*excelize.File, error) {
	f := excelize.NewFile()

	// Rename the default sheet so the summary is the first tab.
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	st, err := newSheetStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i := range catalog.Chapters {
		if err := addChapterSheet(f, st, &catalog.Chapters[i]); err != nil {
			f.Close()
			return nil, fmt.Errorf("chapter %s: %w", catalog.Chapters[i].Key, err)
		}
	}

	if err := addSummary(f, st, catalog); err != nil {
		f.Close()
		return nil, fmt.Errorf("summary: %w", err)
	}
	if err := addChart(f, catalog); err != nil {
		f.Close()
		return nil, fmt.Errorf("chart: %w", err)
	}

	return f, nil
}

// SheetName returns the worksheet name for a chapter, truncated to the
// xlsx name limit.
func SheetName(ch *models.Chapter) string {
	runes := []rune(ch.Name)
	if len(runes) > maxSheetNameRunes {
		runes = runes[:maxSheetNameRunes]
	}
	return string(runes)
}

// tableName returns the named-table identifier for a chapter, referenced
// by the summary formulas (e.g. "table_v1").
func tableName(key string) string {
	return "table_" + strings.ToLower(key)
}

func addChapterSheet(f *excelize.File, st *sheetStyles, ch *models.Chapter) error {
	name := SheetName(ch)
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	zoom := sheetZoom
	if err := f.SetSheetView(name, -1, &excelize.ViewOptions{ZoomScale: &zoom}); err != nil {
		return err
	}
	for _, cw := range chapterWidths {
		if err := f.SetColWidth(name, cw.col, cw.col, cw.width); err != nil {
			return err
		}
	}

	headerRow := make([]interface{}, len(chapterHeaders))
	for i, h := range chapterHeaders {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return err
	}

	for i := range ch.Requirements {
		req := &ch.Requirements[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{req.ID, req.Section, req.Description, req.Level1, req.Level2, req.Level3, "", ""}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	n := len(ch.Requirements)
	if n > 0 {
		columnStyles := []struct {
			col   string
			style int
		}{
			{"A", st.reqID},
			{"B", st.section},
			{"C", st.description},
			{"D", st.levels[0]},
			{"E", st.levels[1]},
			{"F", st.levels[2]},
			{"G", st.fulfilled},
			{"H", st.comment},
		}
		for _, cs := range columnStyles {
			first := fmt.Sprintf("%s2", cs.col)
			last := fmt.Sprintf("%s%d", cs.col, n+1)
			if err := f.SetCellStyle(name, first, last, cs.style); err != nil {
				return err
			}
		}
	}

	stripes := true
	if err := f.AddTable(name, &excelize.Table{
		Range:          fmt.Sprintf("A1:H%d", n+1),
		Name:           tableName(ch.Key),
		StyleName:      tableStyle,
		ShowRowStripes: &stripes,
	}); err != nil {
		return err
	}

	// Fulfilled column dropdown, one row past the table like the data rows
	// a user may append.
	dv := excelize.NewDataValidation(true)
	dv.Sqref = fmt.Sprintf("G2:G%d", n+2)
	if err := dv.SetDropList(Statuses); err != nil {
		return err
	}
	dv.SetError(excelize.DataValidationErrorStyleStop, "Invalid Input",
		"Invalid input. Choose Yes, No, Partially or Not applicable.")
	if err := f.AddDataValidation(name, dv); err != nil {
		return err
	}

	// Tint Fulfilled cells by their chosen status.
	statusRange := fmt.Sprintf("G2:G%d", n+1)
	opts := make([]excelize.ConditionalFormatOptions, 0, len(Statuses))
	for _, status := range Statuses {
		styleID := st.statusFill[status]
		opts = append(opts, excelize.ConditionalFormatOptions{
			Type:     "cell",
			Criteria: "==",
			Value:    strconv.Quote(status),
			Format:   &styleID,
		})
	}
	return f.SetConditionalFormat(name, statusRange, opts)
}
