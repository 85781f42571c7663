package model

// Selection marks one objection ground chosen for a matrix row.
type Selection struct {
	// Category is the canonical name, or the original header text verbatim
	// for grounds outside the closed taxonomy.
	Category Category

	// Note is the optional per-cell annotation ("x; note" extracts "note").
	Note string
}

// Custom reports whether the selection names a ground outside the taxonomy.
func (s Selection) Custom() bool {
	return !s.Category.Known()
}

// MatrixRow is one data row of the selection matrix: an opaque item
// identifier, the grounds selected for it, and the row-level note from the
// notes column. Per-cell notes and the row-level note are independent and
// both preserved.
type MatrixRow struct {
	ID         string
	Selections []Selection
	Note       string
}

// Item is one numbered request recovered from a discovery document.
type Item struct {
	ID   string
	Body string
}
