// Package pipeline orchestrates one generation pass: read both inputs,
// extract items, load the matrix, assemble the package, and write the
// artifact atomically. Every pass is a pure function of file contents plus
// configuration; independent passes share no state.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jthorn/casepack/internal/alias"
	"github.com/jthorn/casepack/internal/assemble"
	"github.com/jthorn/casepack/internal/extract"
	"github.com/jthorn/casepack/internal/matrix"
	"github.com/jthorn/casepack/internal/model"
)

// FileReader abstracts support-file reads so batch runs can layer a cache
// over the filesystem. Input files are always read directly.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Request identifies one discovery/matrix pair and where the artifact goes.
type Request struct {
	DiscoveryPath string
	MatrixPath    string
	OutputPath    string
}

// Result reports what one pass produced. ItemCount of zero means no pattern
// matched the document; the package still completes, with placeholders for
// every row, and tooling should warn.
type Result struct {
	OutputPath         string
	DocType            model.DocType
	TotalRows          int
	RowsWithSelections int
	ItemCount          int
}

// Pipeline runs generation passes under one configuration.
type Pipeline struct {
	cfg      *model.Config
	resolver *alias.Resolver
	support  FileReader
	now      func() time.Time
}

// New creates a pipeline. The alias table is extended with any
// user-configured spellings before the resolver is built.
func New(cfg *model.Config) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		resolver: alias.NewResolver(alias.DefaultTable().WithAliases(cfg.Aliases)),
		support:  osReader{},
		now:      time.Now,
	}
}

// WithSupportReader replaces the support-file reader, typically with the
// batch layer's caching reader.
func (p *Pipeline) WithSupportReader(r FileReader) *Pipeline {
	p.support = r
	return p
}

// Generate runs one pass. I/O errors reading either input propagate
// unchanged; a matrix without an identifier column fails with
// *matrix.SchemaError. The artifact is written atomically, so the caller
// never observes a partially written output.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docText, err := os.ReadFile(req.DiscoveryPath)
	if err != nil {
		return nil, err
	}

	rows, err := matrix.LoadFile(req.MatrixPath, p.resolver)
	if err != nil {
		return nil, err
	}

	items := extract.Extract(string(docText))
	docType := extract.DetectDocType(filepath.Base(req.DiscoveryPath))

	workDir := filepath.Dir(req.DiscoveryPath)
	blocks := p.loadBlocks(workDir)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	asm := assemble.New(model.Verbosity(p.cfg.Verbosity), p.cfg.Limits)
	pkg := asm.Assemble(assemble.Input{
		DocType:       docType,
		DiscoveryFile: filepath.Base(req.DiscoveryPath),
		MatrixFile:    filepath.Base(req.MatrixPath),
		WorkDir:       workDir,
		Rows:          rows,
		Items:         items,
		Blocks:        blocks,
		Support:       p.cfg.Support,
		GeneratedAt:   p.now(),
	})

	if err := writeAtomic(req.OutputPath, []byte(pkg.Markdown)); err != nil {
		return nil, fmt.Errorf("write package: %w", err)
	}

	return &Result{
		OutputPath:         req.OutputPath,
		DocType:            pkg.DocType,
		TotalRows:          pkg.TotalRows,
		RowsWithSelections: pkg.RowsWithSelections,
		ItemCount:          pkg.ItemCount,
	}, nil
}

// loadBlocks reads the three support files next to the discovery document.
// Missing files yield empty blocks, never errors.
func (p *Pipeline) loadBlocks(dir string) model.ContextBlocks {
	read := func(name string) string {
		if name == "" {
			return ""
		}
		data, err := p.support.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return ""
		}
		return string(data)
	}
	return model.ContextBlocks{
		CaseSummary:     read(p.cfg.Support.CaseSummary),
		PreliminaryObjs: read(p.cfg.Support.PreliminaryObjs),
		Templates:       read(p.cfg.Support.Templates),
	}
}

// writeAtomic writes via a temp file in the target directory plus rename,
// so a failed pass leaves no partial artifact behind.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".casepack-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// DefaultOutputName builds the timestamped artifact name for a pair, so
// concurrent passes never write to the same path.
func DefaultOutputName(docType model.DocType, discoveryPath string, at time.Time) string {
	stem := filepath.Base(discoveryPath)
	stem = stem[:len(stem)-len(filepath.Ext(stem))]
	return fmt.Sprintf("prompt_%s_%s_%s.md", docType, stem, at.Format("20060102_150405"))
}
