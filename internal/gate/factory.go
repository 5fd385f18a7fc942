// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"fmt"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/redis/go-redis/v9"
)

// New builds the gate selected by cfg.Gate.Mode. rdb is only used in redis
// mode and may be nil otherwise.
func New(cfg config.StructuredConfig, rdb redis.Cmdable, log *logger.Logger) (Gate, error) {
	budgets := BudgetsFromConfig(cfg.RateLimit)

	log.Info().
		Str("func", "gate.New").
		Str("mode", cfg.Gate.Mode).
		Bool("bot_detection", cfg.Gate.BotDetection).
		Int("admin", budgets.Admin).
		Int("user", budgets.User).
		Int("guest", budgets.Guest).
		Dur("window", budgets.Window).
		Msg("configuring request gate")

	switch cfg.Gate.Mode {
	case config.GateModeOff:
		return NewOpenGate(), nil
	case config.GateModeLocal:
		return NewLocalGate(budgets, cfg.Gate.BotDetection, cfg.Gate.IdleTTL), nil
	case config.GateModeRedis:
		return NewRedisGate(rdb, budgets, cfg.Gate.BotDetection)
	case config.GateModeRemote:
		return NewRemoteGate(cfg.Gate.URL, cfg.Gate.APIKey, cfg.Gate.Timeout, budgets), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Gate.Mode)
	}
}
