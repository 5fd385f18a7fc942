// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/metrics"
)

// Sweeper evicts idle in-memory state. *gate.LocalGate implements it.
type Sweeper interface {
	Sweep(now time.Time) int
}

// GateSweeper periodically evicts idle per-caller limiters so the local gate
// does not grow without bound.
type GateSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

const minSweepInterval = time.Second

func NewGateSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *GateSweeper {
	return &GateSweeper{
		sweeper:  sweeper,
		interval: max(interval, minSweepInterval),
		now:      time.Now,
		logger:   logger,
	}
}

func (g *GateSweeper) Run(ctx context.Context) {
	g.logger.Info().Dur("interval", g.interval).Msg("gate sweeper started")

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.logger.Info().Msg("gate sweeper stopped")
			return
		case <-ticker.C:
			g.sweep()
		}
	}
}

func (g *GateSweeper) sweep() int {
	removed := g.sweeper.Sweep(g.now())
	if removed > 0 {
		metrics.GateSweptTotal.Add(float64(removed))
		g.logger.Debug().Int("removed", removed).Msg("idle gate limiters evicted")
	}
	return removed
}
