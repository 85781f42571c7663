// Package matrix loads the selection matrix: a CSV with one identifier
// column, an optional notes column, and any number of category columns.
package matrix

import "strings"

// CellKind tags the interpretation of one matrix cell.
type CellKind int

const (
	CellNotSelected CellKind = iota
	CellSelectedPlain
	CellSelectedWithNote
)

// CellValue is the interpreted content of a matrix cell.
type CellValue struct {
	Kind CellKind
	Note string // set only for CellSelectedWithNote
}

// Selected reports whether the cell marks its category as chosen.
func (v CellValue) Selected() bool {
	return v.Kind != CellNotSelected
}

// truthy tokens that mark a plain selection with no annotation.
var truthyTokens = map[string]struct{}{
	"X": {}, "YES": {}, "Y": {}, "1": {}, "TRUE": {},
}

// InterpretCell decides whether a raw cell selects its category and extracts
// an optional annotation:
//
//   - empty or whitespace-only: not selected
//   - "marker; note": selected, note trimmed from after the FIRST ";" (the
//     separator itself signals selection, whatever the marker says)
//   - a bare truthy token (x/yes/y/1/true, any case): selected, no note
//   - any other content: selected, the trimmed value kept as the note
func InterpretCell(raw string) CellValue {
	val := strings.TrimSpace(raw)
	if val == "" {
		return CellValue{Kind: CellNotSelected}
	}

	// The separator itself signals selection, whatever precedes it.
	if _, note, ok := strings.Cut(val, ";"); ok {
		note = strings.TrimSpace(note)
		if note == "" {
			return CellValue{Kind: CellSelectedPlain}
		}
		return CellValue{Kind: CellSelectedWithNote, Note: note}
	}

	if _, ok := truthyTokens[strings.ToUpper(val)]; ok {
		return CellValue{Kind: CellSelectedPlain}
	}

	// Any other non-empty content is a deliberate selection; the free text
	// is preserved as context rather than discarded.
	return CellValue{Kind: CellSelectedWithNote, Note: val}
}
