package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"asvsgen/pkg/asvs/models"
)

// summaryHeaders are the columns of every statistics table on the summary
// sheet. Columns B through G map to summaryColumns below.
var summaryHeaders = []string{
	"Level",
	"Total",
	StatusYes,
	StatusNo,
	StatusPartially,
	StatusNotApplicable,
	"No Answer",
}

// summaryColumns maps each count column letter to the Fulfilled criterion it
// counts; empty means an unanswered requirement.
var summaryColumns = []struct {
	col      string
	criteria string
}{
	{"C", StatusYes},
	{"D", StatusNo},
	{"E", StatusPartially},
	{"F", StatusNotApplicable},
	{"G", ""},
}

// The summary sheet is laid out in 5-row blocks, one per chapter, followed
// by one block totalling all chapters:
// block i (0-based): heading at row 5i+1, table header at 5i+2,
// Level L counts at row 5i+2+L.
const summaryBlockRows = 5

func chapterHeadingRow(i int) int {
	return summaryBlockRows*i + 1
}

func chapterLevelRow(i, level int) int {
	return summaryBlockRows*i + 2 + level
}

func totalHeadingRow(chapters int) int {
	return summaryBlockRows*chapters + 1
}

func addSummary(f *excelize.File, st *sheetStyles, catalog *models.Catalog) error {
	zoom := sheetZoom
	if err := f.SetSheetView(SummarySheet, -1, &excelize.ViewOptions{ZoomScale: &zoom}); err != nil {
		return err
	}

	for i := range catalog.Chapters {
		if err := addChapterSummary(f, st, i, &catalog.Chapters[i]); err != nil {
			return err
		}
	}

	return addTotalSummary(f, st, len(catalog.Chapters))
}

// addChapterSummary writes one chapter's heading and a three-row statistics
// table counting that chapter's requirements per level and status. All counts
// are COUNTA/COUNTIFS formulas against the chapter's named table, so they
// track the user's Fulfilled entries live.
func addChapterSummary(f *excelize.File, st *sheetStyles, i int, ch *models.Chapter) error {
	heading := chapterHeadingRow(i)
	if err := writeHeading(f, st, heading, ch.Name); err != nil {
		return err
	}
	if err := writeSummaryHeader(f, heading+1); err != nil {
		return err
	}

	table := tableName(ch.Key)
	for level := 1; level <= 3; level++ {
		row := chapterLevelRow(i, level)
		levelName := fmt.Sprintf("Level %d", level)
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", row), levelName); err != nil {
			return err
		}
		total := fmt.Sprintf("COUNTA(%s[%s])", table, levelName)
		if err := f.SetCellFormula(SummarySheet, fmt.Sprintf("B%d", row), total); err != nil {
			return err
		}
		for _, sc := range summaryColumns {
			count := fmt.Sprintf("COUNTIFS(%s[Fulfilled], %q, %s[%s], \"<>\")",
				table, sc.criteria, table, levelName)
			if err := f.SetCellFormula(SummarySheet, fmt.Sprintf("%s%d", sc.col, row), count); err != nil {
				return err
			}
		}
	}

	return addSummaryTable(f, heading+1)
}

// addTotalSummary writes the whole-catalog statistics table, summing the
// per-chapter level rows above it.
func addTotalSummary(f *excelize.File, st *sheetStyles, chapters int) error {
	heading := totalHeadingRow(chapters)
	if err := writeHeading(f, st, heading, "Summary"); err != nil {
		return err
	}
	if err := writeSummaryHeader(f, heading+1); err != nil {
		return err
	}

	for level := 1; level <= 3; level++ {
		row := heading + 1 + level
		if err := f.SetCellValue(SummarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("Level %d", level)); err != nil {
			return err
		}
		cols := []string{"B", "C", "D", "E", "F", "G"}
		for _, col := range cols {
			refs := make([]string, 0, chapters)
			for i := 0; i < chapters; i++ {
				refs = append(refs, fmt.Sprintf("%s%d", col, chapterLevelRow(i, level)))
			}
			sum := fmt.Sprintf("SUM(%s)", strings.Join(refs, ","))
			if err := f.SetCellFormula(SummarySheet, fmt.Sprintf("%s%d", col, row), sum); err != nil {
				return err
			}
		}
	}

	return addSummaryTable(f, heading+1)
}

func writeHeading(f *excelize.File, st *sheetStyles, row int, text string) error {
	cell := fmt.Sprintf("A%d", row)
	if err := f.SetCellValue(SummarySheet, cell, text); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, cell, cell, st.heading); err != nil {
		return err
	}
	return f.MergeCell(SummarySheet, cell, fmt.Sprintf("F%d", row))
}

func writeSummaryHeader(f *excelize.File, row int) error {
	header := make([]interface{}, len(summaryHeaders))
	for i, h := range summaryHeaders {
		header[i] = h
	}
	return f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", row), &header)
}

// addSummaryTable wraps a header row plus three level rows into a table.
func addSummaryTable(f *excelize.File, headerRow int) error {
	return f.AddTable(SummarySheet, &excelize.Table{
		Range:     fmt.Sprintf("A%d:G%d", headerRow, headerRow+3),
		StyleName: tableStyle,
	})
}
