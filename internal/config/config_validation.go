// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var knownLogLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Env)
	}
	if _, ok := knownLogLevels[strings.ToLower(cfg.App.LogLevel)]; !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	if cfg.Auth.Secret == "" || cfg.Auth.Issuer == "" || cfg.Auth.ExpiresIn <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return cfg.validateGate()
}

func (cfg *StructuredConfig) validateGate() error {
	switch cfg.Gate.Mode {
	case GateModeOff:
		return nil
	case GateModeLocal:
	case GateModeRedis:
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("%w: redis mode requires REDIS_ADDR", ErrInvalidGateConfigs)
		}
	case GateModeRemote:
		if cfg.Gate.URL == "" || cfg.Gate.Timeout <= 0 {
			return fmt.Errorf("%w: remote mode requires GATE_URL and GATE_TIMEOUT", ErrInvalidGateConfigs)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidGateConfigs, cfg.Gate.Mode)
	}

	rl := cfg.RateLimit
	if rl.Admin <= 0 || rl.User <= 0 || rl.Guest <= 0 || rl.Window <= 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidGateConfigs)
	}

	return nil
}
