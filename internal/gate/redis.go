// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisGate counts requests in fixed windows shared by all replicas.
// Key format: gate:<role>:<fingerprint>:<window_start_unix>
type redisGate struct {
	client       redis.Cmdable
	budgets      Budgets
	botDetection bool
	now          func() time.Time
}

// NewRedisGate returns a gate backed by client.
func NewRedisGate(client redis.Cmdable, budgets Budgets, botDetection bool) (Gate, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}

	return &redisGate{
		client:       client,
		budgets:      budgets,
		botDetection: botDetection,
		now:          time.Now,
	}, nil
}

func (g *redisGate) Evaluate(ctx context.Context, req Request) (Verdict, error) {
	if g.botDetection && IsBot(req.UserAgent) {
		return deny(ReasonBotDetected, 0), nil
	}

	now := g.now()
	windowStart := now.Truncate(g.budgets.Window)
	reset := windowStart.Add(g.budgets.Window).Sub(now)
	key := g.key(req, windowStart)

	pipe := g.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, g.budgets.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Verdict{}, fmt.Errorf("%w: %w", ErrCounterStore, err)
	}

	limit := int64(g.budgets.Limit(req.Role))
	count := incr.Val()
	if count > limit {
		return deny(ReasonRateLimited, reset), nil
	}

	return allow(int(limit-count), reset), nil
}

func (g *redisGate) key(req Request, windowStart time.Time) string {
	return fmt.Sprintf("gate:%s:%s:%d", req.Role, req.Fingerprint, windowStart.Unix())
}
