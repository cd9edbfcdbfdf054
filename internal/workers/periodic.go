// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/ratelimit"
)

// PeriodicWorker calls fn every interval until its context is cancelled.
type PeriodicWorker struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context, now time.Time)

	logger *logger.Logger
}

func NewPeriodicWorker(name string, interval time.Duration, fn func(ctx context.Context, now time.Time), logger *logger.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
	}
}

func (p *PeriodicWorker) Run(ctx context.Context) {
	if p.interval <= 0 || p.fn == nil {
		p.logger.Warn().Str("worker", p.name).Msg("periodic worker is not configured, skipping")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Str("worker", p.name).Msg("worker stopped")
			return
		case now := <-ticker.C:
			p.fn(ctx, now)
		}
	}
}

// NewRateLimitCleanupWorker evicts idle rate limiter entries. It returns nil
// when limiting is disabled; Workers skips nil workers.
func NewRateLimitCleanupWorker(limiter *ratelimit.Limiter, logger *logger.Logger) Worker {
	if limiter == nil {
		return nil
	}

	interval := limiter.IdleTTL() / 2
	return NewPeriodicWorker("rate-limit-cleanup", interval, func(_ context.Context, now time.Time) {
		if removed := limiter.Cleanup(now); removed > 0 {
			logger.Debug().Int("removed", removed).Int("remaining", limiter.Len()).Msg("idle rate limiter entries evicted")
		}
	}, logger)
}
