package matrix

import "testing"

func TestInterpretCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CellValue
	}{
		{"empty", "", CellValue{Kind: CellNotSelected}},
		{"whitespace only", "   \t ", CellValue{Kind: CellNotSelected}},
		{"bare x", "x", CellValue{Kind: CellSelectedPlain}},
		{"bare X upper", "X", CellValue{Kind: CellSelectedPlain}},
		{"yes", "Yes", CellValue{Kind: CellSelectedPlain}},
		{"y", "y", CellValue{Kind: CellSelectedPlain}},
		{"one", "1", CellValue{Kind: CellSelectedPlain}},
		{"true", "TRUE", CellValue{Kind: CellSelectedPlain}},
		{"marker with note", "x; overbroad as to time", CellValue{Kind: CellSelectedWithNote, Note: "overbroad as to time"}},
		{"separator with empty note", "x;  ", CellValue{Kind: CellSelectedPlain}},
		{"separator with odd marker", "whatever; see motion", CellValue{Kind: CellSelectedWithNote, Note: "see motion"}},
		{"only first separator splits", "x; a; b", CellValue{Kind: CellSelectedWithNote, Note: "a; b"}},
		{"bare separator", ";", CellValue{Kind: CellSelectedPlain}},
		{"free text", "too broad", CellValue{Kind: CellSelectedWithNote, Note: "too broad"}},
		{"padded free text", "  scope issue  ", CellValue{Kind: CellSelectedWithNote, Note: "scope issue"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpretCell(tt.raw)
			if got != tt.want {
				t.Errorf("InterpretCell(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCellValue_Selected(t *testing.T) {
	if (CellValue{Kind: CellNotSelected}).Selected() {
		t.Error("NotSelected reported as selected")
	}
	if !(CellValue{Kind: CellSelectedPlain}).Selected() {
		t.Error("SelectedPlain reported as not selected")
	}
	if !(CellValue{Kind: CellSelectedWithNote, Note: "n"}).Selected() {
		t.Error("SelectedWithNote reported as not selected")
	}
}
