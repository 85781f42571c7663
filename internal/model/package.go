package model

import "time"

// DocType tags the discovery document flavor, detected from the filename.
type DocType string

const (
	DocTypeRFA     DocType = "RFA"       // requests for admission
	DocTypeFROG    DocType = "FROG"      // form interrogatories
	DocTypeSROG    DocType = "SROG"      // special interrogatories
	DocTypeRPD     DocType = "RPD"       // requests for production
	DocTypeGeneric DocType = "DISCOVERY" // fallback when no filename rule matches
)

// Noun returns the term the drafting instructions use for one item of this
// discovery type.
func (t DocType) Noun() string {
	switch t {
	case DocTypeFROG, DocTypeSROG:
		return "interrogatory"
	default:
		return "request"
	}
}

// ContextBlocks holds the opaque support texts embedded in a package.
// Missing files yield empty blocks, never errors.
type ContextBlocks struct {
	CaseSummary     string // case_summary.txt
	PreliminaryObjs string // preliminary_objections.txt
	Templates       string // objection_language.txt, the approved-template catalog
}

// Package is the rendered join of matrix rows and extracted items, plus the
// context blocks, under one verbosity setting. Immutable once assembled.
type Package struct {
	DocType     DocType
	Markdown    string
	GeneratedAt time.Time

	// Counts surfaced to the caller so tooling can warn on empty extraction
	// or selection-free matrices.
	TotalRows          int
	RowsWithSelections int
	ItemCount          int
}
