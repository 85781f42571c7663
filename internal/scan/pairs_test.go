package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/model"
)

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindDiscoveryFiles_SkipsSupportFiles(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "Form_Rogs.txt", "Form Interrogatory No. 1.1: text")
	write(t, dir, "case_summary.txt", "summary")
	write(t, dir, "objection_language.txt", "templates")
	write(t, dir, "preliminary_objections.txt", "prelim")
	write(t, dir, "matrix.csv", "Request,Relevance\n")

	files, err := FindDiscoveryFiles(dir, model.DefaultConfig().Support)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "Form_Rogs.txt" {
		t.Errorf("files = %v", files)
	}
}

func TestFindMatrixFiles_RequiresIdentifierColumn(t *testing.T) {
	dir := t.TempDir()
	res := alias.NewResolver(alias.DefaultTable())
	write(t, dir, "good.csv", "Request No.,Relevance\n1,x\n")
	write(t, dir, "bad.csv", "Relevance,Vague\nx,\n")
	write(t, dir, "empty.csv", "")

	files, err := FindMatrixFiles(dir, res)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "good.csv" {
		t.Errorf("files = %v", files)
	}
}

func TestMatchPairs(t *testing.T) {
	pairs := MatchPairs(
		[]string{"/w/Form_Rogs.txt", "/w/RFA_Set_One.txt"},
		[]string{"/w/rfa_set_one_matrix.csv", "/w/form_rogs_matrix.csv"},
	)
	if len(pairs) != 2 {
		t.Fatalf("pairs = %v", pairs)
	}
	got := map[string]string{}
	for _, p := range pairs {
		got[filepath.Base(p.Discovery)] = filepath.Base(p.Matrix)
	}
	if got["Form_Rogs.txt"] != "form_rogs_matrix.csv" {
		t.Errorf("Form_Rogs matched %q", got["Form_Rogs.txt"])
	}
	if got["RFA_Set_One.txt"] != "rfa_set_one_matrix.csv" {
		t.Errorf("RFA_Set_One matched %q", got["RFA_Set_One.txt"])
	}
}

func TestMatchPairs_MatrixClaimedOnce(t *testing.T) {
	pairs := MatchPairs(
		[]string{"/w/srogs_one.txt", "/w/srogs_two.txt"},
		[]string{"/w/srogs_one_matrix.csv"},
	)
	if len(pairs) != 1 {
		t.Fatalf("a matrix must pair with at most one document: %v", pairs)
	}
}

func TestMatchPairs_WeakMatchesRejected(t *testing.T) {
	pairs := MatchPairs([]string{"/w/zq.txt"}, []string{"/w/ab.csv"})
	if len(pairs) != 0 {
		t.Errorf("weak matches must be rejected: %v", pairs)
	}
}
