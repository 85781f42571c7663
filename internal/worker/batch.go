package worker

import (
	"context"

	"github.com/jthorn/casepack/internal/pipeline"
)

// Generator runs one generation pass; satisfied by *pipeline.Pipeline.
type Generator interface {
	Generate(ctx context.Context, req pipeline.Request) (*pipeline.Result, error)
}

// GenerateJob is one discovery/matrix pair queued for generation.
type GenerateJob struct {
	Request   pipeline.Request
	Generator Generator
}

// Execute runs the pass.
func (j *GenerateJob) Execute(ctx context.Context) Result {
	res, err := j.Generator.Generate(ctx, j.Request)
	return &GenerateResult{Request: j.Request, Result: res, Error: err}
}

// GenerateResult is the outcome of one pair.
type GenerateResult struct {
	Request pipeline.Request
	Result  *pipeline.Result
	Error   error
}

// GetError returns the pass error, if any.
func (r *GenerateResult) GetError() error { return r.Error }

// BatchProcessor fans generation requests out over a worker pool. Each
// request has its own output path, so passes never contend on the
// filesystem.
type BatchProcessor struct {
	generator   Generator
	concurrency int
}

// NewBatchProcessor creates a processor running passes through gen with the
// given parallelism.
func NewBatchProcessor(gen Generator, concurrency int) *BatchProcessor {
	return &BatchProcessor{generator: gen, concurrency: concurrency}
}

// Process runs all requests and returns one result per request. Individual
// failures are carried in the results; the batch itself always completes.
func (b *BatchProcessor) Process(ctx context.Context, reqs []pipeline.Request) []*GenerateResult {
	if len(reqs) == 0 {
		return nil
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	go func() {
		for _, req := range reqs {
			pool.Submit(&GenerateJob{Request: req, Generator: b.generator})
		}
		pool.Close()
	}()

	results := pool.Wait()
	close(done)

	out := make([]*GenerateResult, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*GenerateResult))
	}
	return out
}
