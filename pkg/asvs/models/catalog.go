// Package models defines the in-memory representation of a parsed ASVS catalog.
package models

// Requirement is a single verification requirement from the catalog.
// It is immutable once parsed.
type Requirement struct {
	// ID is the requirement identifier without the leading "V" (e.g. "1.2.3").
	ID string
	// Section is the name of the section the requirement belongs to.
	Section string
	// Description is the requirement text.
	Description string
	// Level1 is the display marker for Level 1 applicability.
	Level1 string
	// Level2 is the display marker for Level 2 applicability.
	Level2 string
	// Level3 is the display marker for Level 3 applicability.
	Level3 string
}

// Chapter groups the requirements of one top-level catalog chapter.
type Chapter struct {
	// Key is the chapter identifier (e.g. "V1").
	Key string
	// Name is the chapter identifier followed by the chapter title,
	// used as the worksheet name.
	Name string
	// Requirements holds the chapter's requirements in source-row order.
	Requirements []Requirement
}

// Catalog holds the chapters of one catalog version in first-seen
// source order.
type Catalog struct {
	// Chapters lists the chapters in the order they first appear in the CSV.
	Chapters []Chapter
}

// Total returns the number of requirements across all chapters.
func (c *Catalog) Total() int {
	n := 0
	for i := range c.Chapters {
		n += len(c.Chapters[i].Requirements)
	}
	return n
}
