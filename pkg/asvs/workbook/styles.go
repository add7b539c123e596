package workbook

import "github.com/xuri/excelize/v2"

// Fulfilment statuses offered in the Fulfilled dropdown. An empty cell
// counts as "No Answer" in the summary tables.
const (
	StatusYes           = "Yes"
	StatusNo            = "No"
	StatusPartially     = "Partially"
	StatusNotApplicable = "Not applicable"
)

// Statuses lists the dropdown choices in display order.
var Statuses = []string{StatusYes, StatusNo, StatusPartially, StatusNotApplicable}

// statusFills maps each status to the fill tint applied to Fulfilled cells
// holding that value.
var statusFills = map[string]string{
	StatusYes:           "ECF1DF",
	StatusNo:            "FFC7CE",
	StatusPartially:     "FFEB9C",
	StatusNotApplicable: "D3D3D3",
}

// levelFills tints the three level columns in increasingly darker blues.
var levelFills = [3]string{"DCE6F1", "B8CCE4", "95B3D7"}

// sheetStyles holds the style IDs used across chapter and summary sheets.
// Style IDs are workbook-scoped, so one set serves every sheet.
type sheetStyles struct {
	reqID       int
	section     int
	description int
	levels      [3]int
	fulfilled   int
	comment     int
	heading     int
	statusFill  map[string]int
}

func newSheetStyles(f *excelize.File) (*sheetStyles, error) {
	st := &sheetStyles{statusFill: make(map[string]int)}

	var err error
	if st.reqID, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}); err != nil {
		return nil, err
	}
	if st.section, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return nil, err
	}
	if st.description, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	}); err != nil {
		return nil, err
	}
	for i, color := range levelFills {
		if st.levels[i], err = f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		}); err != nil {
			return nil, err
		}
	}
	if st.fulfilled, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}); err != nil {
		return nil, err
	}
	if st.comment, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	}); err != nil {
		return nil, err
	}
	if st.heading, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return nil, err
	}

	// Conditional styles live in a separate format table.
	for status, color := range statusFills {
		id, err := f.NewConditionalStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, err
		}
		st.statusFill[status] = id
	}

	return st, nil
}
