package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jthorn/casepack/internal/model"
	"github.com/jthorn/casepack/internal/pipeline"
)

type fakeGenerator struct{}

func (fakeGenerator) Generate(ctx context.Context, req pipeline.Request) (*pipeline.Result, error) {
	if filepath.Base(req.DiscoveryPath) == "broken.txt" {
		return nil, errors.New("boom")
	}
	return &pipeline.Result{OutputPath: req.OutputPath, TotalRows: 1}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	b := NewBatchProcessor(fakeGenerator{}, 2)

	reqs := []pipeline.Request{
		{DiscoveryPath: "a.txt", OutputPath: "a.md"},
		{DiscoveryPath: "broken.txt", OutputPath: "b.md"},
		{DiscoveryPath: "c.txt", OutputPath: "c.md"},
	}
	results := b.Process(context.Background(), reqs)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(fakeGenerator{}, 2)
	if results := b.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("results = %v, want none", results)
	}
}

func TestBatchProcessor_RealPipeline(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	disc := writeFile("rfa.txt", "REQUEST FOR ADMISSION NO. 1: Admit A.")
	mtx := writeFile("rfa_matrix.csv", "Request,Relevance\n1,x\n")

	b := NewBatchProcessor(pipeline.New(model.DefaultConfig()), 2)
	results := b.Process(context.Background(), []pipeline.Request{{
		DiscoveryPath: disc,
		MatrixPath:    mtx,
		OutputPath:    filepath.Join(dir, "out.md"),
	}})

	if len(results) != 1 || results[0].GetError() != nil {
		t.Fatalf("results = %+v", results)
	}
	if _, err := os.Stat(results[0].Result.OutputPath); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
}

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("openai") {
		t.Fatal("first call should pass")
	}
	if l.Allow("openai") {
		t.Error("second immediate call should be throttled")
	}
	// Keys are independent.
	if !l.Allow("ollama") {
		t.Error("a different key must have its own budget")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	if err := l.Wait(context.Background(), "k"); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, "k"); err == nil {
		t.Error("Wait should fail once the context deadline passes")
	}
}
