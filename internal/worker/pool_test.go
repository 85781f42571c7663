package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *atomic.Int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countResult{err: errors.New("job failed")}
	}
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(3)
	pool.Start()

	go func() {
		for i := 0; i < 10; i++ {
			pool.Submit(&countJob{counter: &counter})
		}
		pool.Close()
	}()
	results := pool.Wait()

	if counter.Load() != 10 {
		t.Errorf("executed %d jobs, want 10", counter.Load())
	}
	if len(results) != 10 {
		t.Errorf("collected %d results, want 10", len(results))
	}
}

func TestPool_FailuresCarriedInResults(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(2)
	pool.Start()

	go func() {
		pool.Submit(&countJob{counter: &counter})
		pool.Submit(&countJob{counter: &counter, fail: true})
		pool.Close()
	}()
	results := pool.Wait()

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

func TestPool_ZeroWorkersClamped(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(0)
	pool.Start()
	go func() {
		pool.Submit(&countJob{counter: &counter})
		pool.Close()
	}()
	pool.Wait()

	if counter.Load() != 1 {
		t.Error("pool with clamped worker count should still run jobs")
	}
}
