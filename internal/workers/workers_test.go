// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/ratelimit"
)

// countingWorker records Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	ws.Run(ctx)

	for i, w := range []*countingWorker{w1, w2, w3} {
		if got := w.runs.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runs=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should return immediately
	ws.Run(context.Background())

	if ws.Len() != 0 {
		t.Errorf("expected Len=0, got %d", ws.Len())
	}
}

func TestWorkers_Run_SkipsNil(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(nil, w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ws.Run(ctx)

	if got := w.runs.Load(); got != 1 {
		t.Errorf("expected runs=1, got %d", got)
	}
}

func TestWorkers_Run_ReturnsAfterCancel(t *testing.T) {
	ws := NewWorkers(&countingWorker{}, &countingWorker{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancellation")
	}
}

func TestPeriodicWorker_CallsFnUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	p := NewPeriodicWorker("test", 5*time.Millisecond, func(context.Context, time.Time) {
		if calls.Add(1) == 3 {
			cancel()
		}
	}, logger.Nop())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic worker did not stop")
	}

	if calls.Load() < 3 {
		t.Errorf("expected at least 3 calls, got %d", calls.Load())
	}
}

func TestPeriodicWorker_ZeroIntervalReturnsImmediately(t *testing.T) {
	p := NewPeriodicWorker("noop", 0, func(context.Context, time.Time) {
		t.Error("fn must not be called")
	}, logger.Nop())

	p.Run(context.Background())
}

func TestNewRateLimitCleanupWorker_NilLimiter(t *testing.T) {
	if w := NewRateLimitCleanupWorker(nil, logger.Nop()); w != nil {
		t.Errorf("expected nil worker for disabled limiter, got %T", w)
	}
}

func TestNewRateLimitCleanupWorker_EvictsIdleEntries(t *testing.T) {
	limiter := ratelimit.New(1, 1, 20*time.Millisecond)
	limiter.Allow("10.0.0.1")

	w := NewRateLimitCleanupWorker(limiter, logger.Nop())
	if w == nil {
		t.Fatal("expected cleanup worker")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	w.Run(ctx)

	if limiter.Len() != 0 {
		t.Errorf("expected idle entry to be evicted, Len=%d", limiter.Len())
	}
}
