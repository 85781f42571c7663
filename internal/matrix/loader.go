package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/model"
)

// SchemaError reports a matrix whose header row resolves no identifier
// column. Such a matrix cannot be joined against the discovery document and
// must not silently proceed; the observed headers are carried so the user
// can fix the input.
type SchemaError struct {
	Headers []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no request-number column found; headers: [%s]", strings.Join(e.Headers, ", "))
}

// categoryColumn binds one CSV column index to its resolved category.
type categoryColumn struct {
	index    int
	category model.Category
}

// Load reads the selection matrix from r. The first record is the header
// row; each header is resolved through the alias resolver. When identifier
// or annotation-like columns are duplicated, the first wins and later ones
// are ignored. Data rows with an empty identifier are dropped; source row
// order is preserved.
func Load(r io.Reader, res *alias.Resolver) ([]model.MatrixRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{}
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		// Spreadsheet exports often lead with a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	idCol := -1
	noteCol := -1
	var catCols []categoryColumn

	for i, h := range header {
		// Spreadsheet exports often leave blank header cells (trailing
		// commas); those columns carry no category and are dropped.
		if strings.TrimSpace(h) == "" {
			continue
		}
		switch resolution := res.Resolve(h); resolution.Kind {
		case alias.KindIdentifier:
			if idCol < 0 {
				idCol = i
			}
		case alias.KindAnnotation:
			if noteCol < 0 {
				noteCol = i
			}
		default:
			catCols = append(catCols, categoryColumn{index: i, category: resolution.Category})
		}
	}

	if idCol < 0 {
		return nil, &SchemaError{Headers: header}
	}

	var rows []model.MatrixRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		id := strings.TrimSpace(field(record, idCol))
		if id == "" {
			continue
		}

		row := model.MatrixRow{ID: id}
		for _, col := range catCols {
			cell := InterpretCell(field(record, col.index))
			if !cell.Selected() {
				continue
			}
			row.Selections = append(row.Selections, model.Selection{
				Category: col.category,
				Note:     cell.Note,
			})
		}
		if noteCol >= 0 {
			row.Note = strings.TrimSpace(field(record, noteCol))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadFile reads the matrix from a CSV file on disk.
func LoadFile(path string, res *alias.Resolver) ([]model.MatrixRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := Load(f, res)
	if err != nil {
		if schemaErr, ok := err.(*SchemaError); ok {
			return nil, schemaErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// field returns record[i], tolerating ragged rows.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
