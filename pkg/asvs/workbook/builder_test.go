package workbook

import (
	"archive/zip"
	"path/filepath"
	"strings"
	"testing"

	"asvsgen/pkg/asvs/models"
)

func sampleCatalog() *models.Catalog {
	return &models.Catalog{Chapters: []models.Chapter{
		{
			Key:  "V1",
			Name: "V1 Encoding and Sanitization",
			Requirements: []models.Requirement{
				{ID: "1.1.1", Section: "Encoding Architecture", Description: "Verify that input is decoded once.", Level1: "✓", Level2: "✓", Level3: "✓"},
				{ID: "1.2.1", Section: "Injection Prevention", Description: "Verify output encoding.", Level2: "✓", Level3: "✓"},
				{ID: "1.2.2", Section: "Injection Prevention", Description: "Verify parameterized queries.", Level3: "✓"},
			},
		},
		{
			Key:  "V2",
			Name: "V2 Validation and Business Logic",
			Requirements: []models.Requirement{
				{ID: "2.1.1", Section: "Validation", Description: "Verify positive validation.", Level1: "✓", Level2: "✓", Level3: "✓"},
				{ID: "2.2.1", Section: "Business Logic", Description: "Verify business logic limits.", Level2: "✓", Level3: "✓"},
			},
		},
	}}
}

func TestBuildSheetLayout(t *testing.T) {
	f, err := Build(sampleCatalog())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "V1 Encoding and Sanitization", "V2 Validation and Business Log"}
	if len(sheets) != len(want) {
		t.Fatalf("Expected %d sheets, got %d: %v", len(want), len(sheets), sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Errorf("Sheet %d: expected %q, got %q", i, name, sheets[i])
		}
	}
}

func TestBuildChapterSheetContents(t *testing.T) {
	catalog := sampleCatalog()
	f, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer f.Close()

	sheet := SheetName(&catalog.Chapters[0])
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	if len(rows) != 4 { // header + 3 requirements
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "Requirement ID" || rows[0][6] != "Fulfilled" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "1.1.1" {
		t.Errorf("Expected ID 1.1.1 in first data row, got %q", rows[1][0])
	}
	if rows[2][2] != "Verify output encoding." {
		t.Errorf("Unexpected description: %q", rows[2][2])
	}
	// Source-row order preserved, not sorted
	if rows[3][0] != "1.2.2" {
		t.Errorf("Expected ID 1.2.2 in last data row, got %q", rows[3][0])
	}
}

func TestBuildChapterTables(t *testing.T) {
	catalog := sampleCatalog()
	f, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer f.Close()

	tables, err := f.GetTables(SheetName(&catalog.Chapters[0]))
	if err != nil {
		t.Fatalf("GetTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if tables[0].Name != "table_v1" {
		t.Errorf("Expected table name table_v1, got %q", tables[0].Name)
	}
	if tables[0].Range != "A1:H4" {
		t.Errorf("Expected range A1:H4, got %q", tables[0].Range)
	}
}

func TestBuildFulfilledDropdown(t *testing.T) {
	catalog := sampleCatalog()
	f, err := Build(catalog)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer f.Close()

	dvs, err := f.GetDataValidations(SheetName(&catalog.Chapters[1]))
	if err != nil {
		t.Fatalf("GetDataValidations failed: %v", err)
	}
	if len(dvs) != 1 {
		t.Fatalf("Expected 1 data validation, got %d", len(dvs))
	}
	if dvs[0].Sqref != "G2:G4" {
		t.Errorf("Expected Sqref G2:G4, got %q", dvs[0].Sqref)
	}
	for _, status := range Statuses {
		if !strings.Contains(dvs[0].Formula1, status) {
			t.Errorf("Dropdown is missing status %q: %q", status, dvs[0].Formula1)
		}
	}
}

func TestBuildChartPresent(t *testing.T) {
	f, err := Build(sampleCatalog())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer f.Close()

	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	// excelize has no chart read-back, so check the OOXML part directly.
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open workbook as zip: %v", err)
	}
	defer r.Close()

	found := false
	for _, file := range r.File {
		if strings.HasPrefix(file.Name, "xl/charts/chart") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected a chart part under xl/charts/")
	}
}

func TestSheetNameTruncation(t *testing.T) {
	ch := &models.Chapter{
		Key:  "V14",
		Name: "V14 Configuration and Dependency Management Verification",
	}
	name := SheetName(ch)
	if len([]rune(name)) != 30 {
		t.Errorf("Expected 30-rune sheet name, got %d: %q", len([]rune(name)), name)
	}
}
