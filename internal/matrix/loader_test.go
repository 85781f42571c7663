package matrix

import (
	"strings"
	"testing"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/model"
)

func testResolver() *alias.Resolver {
	return alias.NewResolver(alias.DefaultTable())
}

func TestLoad_Basic(t *testing.T) {
	csvData := "Request No.,Relevance,Vague & Ambiguous,Notes\n" +
		"1.1,x,\"x; undefined terms\",check scope\n" +
		"1.2,,,\n" +
		"2,yes,,\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[0]
	if first.ID != "1.1" {
		t.Errorf("row 0 id = %q", first.ID)
	}
	if len(first.Selections) != 2 {
		t.Fatalf("row 0 selections = %d, want 2", len(first.Selections))
	}
	if first.Selections[0].Category != model.CategoryRelevance || first.Selections[0].Note != "" {
		t.Errorf("row 0 selection 0 = %+v", first.Selections[0])
	}
	if first.Selections[1].Category != model.CategoryVague || first.Selections[1].Note != "undefined terms" {
		t.Errorf("row 0 selection 1 = %+v", first.Selections[1])
	}
	if first.Note != "check scope" {
		t.Errorf("row 0 note = %q", first.Note)
	}

	if len(rows[1].Selections) != 0 {
		t.Errorf("row 1 should have no selections, got %+v", rows[1].Selections)
	}
	if rows[2].ID != "2" || len(rows[2].Selections) != 1 {
		t.Errorf("row 2 = %+v", rows[2])
	}
}

func TestLoad_NoIdentifierColumn(t *testing.T) {
	csvData := "Relevance,Vague,Notes\nx,,\n"

	_, err := Load(strings.NewReader(csvData), testResolver())
	schemaErr, ok := err.(*SchemaError)
	if !ok {
		t.Fatalf("error = %v, want *SchemaError", err)
	}
	for _, h := range []string{"Relevance", "Vague", "Notes"} {
		found := false
		for _, got := range schemaErr.Headers {
			if got == h {
				found = true
			}
		}
		if !found {
			t.Errorf("SchemaError missing observed header %q: %v", h, schemaErr.Headers)
		}
	}
	if !strings.Contains(schemaErr.Error(), "Relevance") {
		t.Errorf("Error() should list headers verbatim: %q", schemaErr.Error())
	}
}

func TestLoad_EmptyIdentifierRowsDropped(t *testing.T) {
	csvData := "Request,Relevance\n1,x\n  ,x\n,x\n2,x\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 || rows[0].ID != "1" || rows[1].ID != "2" {
		t.Errorf("rows = %+v, want ids 1 and 2 only", rows)
	}
}

func TestLoad_DuplicateRoleColumnsFirstWins(t *testing.T) {
	// The second identifier-like and notes-like columns are ignored
	// entirely; they do not become category columns.
	csvData := "Request,No.,Notes,Comments,Relevance\nfirst-id,second-id,note-a,note-b,x\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	row := rows[0]
	if row.ID != "first-id" {
		t.Errorf("id = %q, want first identifier column", row.ID)
	}
	if row.Note != "note-a" {
		t.Errorf("note = %q, want first notes column", row.Note)
	}
	if len(row.Selections) != 1 {
		t.Errorf("selections = %+v, duplicated role columns must not become categories", row.Selections)
	}
}

func TestLoad_CustomHeaderBecomesCustomCategory(t *testing.T) {
	csvData := "Request,Foo-Objection\n1,x; bar\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sel := rows[0].Selections[0]
	if sel.Category != "Foo-Objection" || !sel.Custom() {
		t.Errorf("selection = %+v, want custom category with original header", sel)
	}
	if sel.Note != "bar" {
		t.Errorf("note = %q, want %q", sel.Note, "bar")
	}
}

func TestLoad_BlankHeadersIgnored(t *testing.T) {
	// A trailing comma in the header row yields an empty header cell; the
	// column must not become a selectable category.
	csvData := "Request,Relevance, ,\n1,x,stray,more\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows[0].Selections) != 1 {
		t.Fatalf("selections = %+v, blank-header columns must be dropped", rows[0].Selections)
	}
	if rows[0].Selections[0].Category == "" {
		t.Error("a selection must never carry an empty category label")
	}
}

func TestLoad_BOMAndRaggedRows(t *testing.T) {
	csvData := "\uFEFFRequest,Relevance,Vague\n1,x\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load with BOM: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "1" {
		t.Fatalf("rows = %+v", rows)
	}
	if len(rows[0].Selections) != 1 {
		t.Errorf("short row should read missing cells as empty: %+v", rows[0].Selections)
	}
}

func TestLoad_RowOrderPreserved(t *testing.T) {
	csvData := "Request,Relevance\n9,x\n3,x\n7,x\n"

	rows, err := Load(strings.NewReader(csvData), testResolver())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"9", "3", "7"}
	for i, id := range want {
		if rows[i].ID != id {
			t.Errorf("row %d id = %q, want %q (source order)", i, rows[i].ID, id)
		}
	}
}
