// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalGate keeps one token bucket per role and fingerprint in memory. Each
// bucket holds the role's full budget and refills it evenly over the window.
//
// Buckets that stay unused for longer than the idle TTL are dropped by
// [LocalGate.Sweep]; the server calls it periodically from a background
// worker.
type LocalGate struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	budgets      Budgets
	botDetection bool
	idleTTL      time.Duration
	now          func() time.Time
}

// NewLocalGate returns an in-process gate.
func NewLocalGate(budgets Budgets, botDetection bool, idleTTL time.Duration) *LocalGate {
	return &LocalGate{
		visitors:     make(map[string]*visitor),
		budgets:      budgets,
		botDetection: botDetection,
		idleTTL:      idleTTL,
		now:          time.Now,
	}
}

// Evaluate implements [Gate]. It never returns an error.
func (g *LocalGate) Evaluate(_ context.Context, req Request) (Verdict, error) {
	if g.botDetection && IsBot(req.UserAgent) {
		return deny(ReasonBotDetected, 0), nil
	}

	now := g.now()
	limiter := g.limiter(req, now)

	res := limiter.ReserveN(now, 1)
	if !res.OK() {
		return deny(ReasonRateLimited, g.budgets.Window), nil
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return deny(ReasonRateLimited, delay), nil
	}

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	return allow(remaining, g.refillInterval(req)), nil
}

func (g *LocalGate) limiter(req Request, now time.Time) *rate.Limiter {
	key := string(req.Role) + ":" + req.Fingerprint

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.visitors[key]
	if !ok {
		limit := g.budgets.Limit(req.Role)
		v = &visitor{limiter: rate.NewLimiter(rate.Every(g.budgets.Window/time.Duration(max(limit, 1))), limit)}
		g.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

func (g *LocalGate) refillInterval(req Request) time.Duration {
	return g.budgets.Window / time.Duration(max(g.budgets.Limit(req.Role), 1))
}

// Sweep drops buckets that were not used within the idle TTL and returns how
// many were removed.
func (g *LocalGate) Sweep(now time.Time) int {
	cutoff := now.Add(-g.idleTTL)

	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for key, v := range g.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(g.visitors, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of tracked buckets.
func (g *LocalGate) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.visitors)
}
