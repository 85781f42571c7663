// Package scan discovers candidate discovery documents and selection
// matrices in a working directory and auto-matches them into pairs by
// filename similarity.
package scan

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/model"
)

// Pair is one matched discovery/matrix combination.
type Pair struct {
	Discovery string
	Matrix    string
}

// FindDiscoveryFiles lists .txt files in dir, skipping the support files
// named in the configuration.
func FindDiscoveryFiles(dir string, support model.SupportConfig) ([]string, error) {
	skip := map[string]struct{}{
		strings.ToLower(support.CaseSummary):     {},
		strings.ToLower(support.PreliminaryObjs): {},
		strings.ToLower(support.Templates):       {},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		if _, skipped := skip[strings.ToLower(e.Name())]; skipped {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// FindMatrixFiles lists .csv files in dir whose header row resolves an
// identifier column. Unreadable or malformed files are skipped, not errors:
// the directory may hold unrelated spreadsheets.
func FindMatrixFiles(dir string, res *alias.Resolver) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if hasIdentifierColumn(path, res) {
			files = append(files, path)
		}
	}
	return files, nil
}

func hasIdentifierColumn(path string, res *alias.Resolver) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		return false
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	for _, h := range header {
		if res.Resolve(h).Kind == alias.KindIdentifier {
			return true
		}
	}
	return false
}

// MatchPairs matches each discovery file with its best-scoring matrix by
// name similarity: shared character set plus a bonus when one normalized
// stem contains the other. A matrix is claimed by at most one document, and
// weak matches (score <= 3) are rejected.
func MatchPairs(discovery, matrices []string) []Pair {
	var pairs []Pair
	claimed := make(map[string]bool)

	for _, doc := range discovery {
		docStem := normalizeStem(doc)

		best := ""
		bestScore := 0
		for _, m := range matrices {
			if claimed[m] {
				continue
			}
			score := similarity(docStem, normalizeStem(m))
			if score > bestScore {
				bestScore = score
				best = m
			}
		}

		if best != "" && bestScore > 3 {
			pairs = append(pairs, Pair{Discovery: doc, Matrix: best})
			claimed[best] = true
		}
	}
	return pairs
}

func normalizeStem(path string) string {
	stem := filepath.Base(path)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]
	stem = strings.ToLower(stem)
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(stem)
}

func similarity(a, b string) int {
	setA := make(map[rune]struct{})
	for _, r := range a {
		setA[r] = struct{}{}
	}
	score := 0
	seen := make(map[rune]struct{})
	for _, r := range b {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if _, ok := setA[r]; ok {
			score++
		}
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		score += 10
	}
	return score
}
