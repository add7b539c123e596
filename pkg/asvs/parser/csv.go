// Package parser turns raw ASVS catalog CSV content into an ordered catalog.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"asvsgen/pkg/asvs"
	"asvsgen/pkg/asvs/models"
)

// Shared column layout across catalog versions:
// 0 - chapter_id
// 1 - chapter_name
// 2 - section_id
// 3 - section_name
// 4 - req_id
// 5 - req_description
// Version 4 continues with level1, level2, level3, cwe.
// Version 5 continues with a single numeric L column.
const (
	colChapterID   = 0
	colChapterName = 1
	colSectionName = 3
	colReqID       = 4
	colDescription = 5
	colLevelFirst  = 6
)

// levelMark is placed in a level column when the requirement applies
// at that level.
const levelMark = "✓"

func columnsFor(version asvs.Version) (int, error) {
	switch version {
	case asvs.Version4:
		return 10, nil
	case asvs.Version5:
		return 7, nil
	}
	return 0, asvs.NewConfigError(int(version))
}

// Parse decodes catalog CSV content into chapters, preserving first-seen
// chapter order and source-row order within each chapter.
// Content that does not match the version's column schema returns a
// *asvs.FormatError carrying the offending record number.
func Parse(data []byte, version asvs.Version) (*models.Catalog, error) {
	want, err := columnsFor(version)
	if err != nil {
		return nil, err
	}

	// GitHub serves the published CSVs with a UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // row widths are validated per version below

	header, err := r.Read()
	if err == io.EOF {
		return nil, asvs.NewFormatError(0, errors.New("empty catalog"))
	}
	if err != nil {
		return nil, asvs.NewFormatError(1, err)
	}
	if len(header) < want {
		return nil, asvs.NewFormatError(1, fmt.Errorf("header has %d columns, expected at least %d", len(header), want))
	}

	catalog := &models.Catalog{}
	index := make(map[string]int)
	line := 1

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, asvs.NewFormatError(line, err)
		}
		if isEmptyRow(row) {
			continue
		}
		if len(row) < want {
			return nil, asvs.NewFormatError(line, fmt.Errorf("row has %d columns, expected at least %d", len(row), want))
		}

		req, err := decodeRow(row, version)
		if err != nil {
			return nil, asvs.NewFormatError(line, err)
		}

		key := row[colChapterID]
		i, ok := index[key]
		if !ok {
			i = len(catalog.Chapters)
			index[key] = i
			catalog.Chapters = append(catalog.Chapters, models.Chapter{
				Key:  key,
				Name: key + " " + row[colChapterName],
			})
		}
		catalog.Chapters[i].Requirements = append(catalog.Chapters[i].Requirements, req)
	}

	return catalog, nil
}

// decodeRow converts one CSV data row into a Requirement.
func decodeRow(row []string, version asvs.Version) (models.Requirement, error) {
	req := models.Requirement{
		ID:          strings.TrimPrefix(row[colReqID], "V"),
		Section:     row[colSectionName],
		Description: row[colDescription],
	}

	switch version {
	case asvs.Version4:
		// Explicit per-level columns, copied verbatim.
		req.Level1 = row[colLevelFirst]
		req.Level2 = row[colLevelFirst+1]
		req.Level3 = row[colLevelFirst+2]
	case asvs.Version5:
		// A single numeric level: the requirement applies at its own
		// level and every level above it.
		l, err := strconv.Atoi(strings.TrimSpace(row[colLevelFirst]))
		if err != nil {
			return models.Requirement{}, fmt.Errorf("level %q is not a number", row[colLevelFirst])
		}
		req.Level1 = mark(l <= 1)
		req.Level2 = mark(l <= 2)
		req.Level3 = mark(l <= 3)
	}

	return req, nil
}

func mark(applies bool) string {
	if applies {
		return levelMark
	}
	return ""
}

func isEmptyRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
