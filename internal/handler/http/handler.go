// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/gate"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/internal/utils"
)

// HealthCheck probes one backing dependency for GET /health/ready.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services *service.Services
	gate     gate.Gate

	// healthChecks are keyed by dependency name ("database", "redis").
	healthChecks map[string]HealthCheck

	// fingerprints turns caller identity into opaque gate keys.
	fingerprints *utils.Hasher

	appName        string
	production     bool
	requestTimeout time.Duration
	startedAt      time.Time

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil gate allows every request.
func NewHandler(services *service.Services, g gate.Gate, healthChecks map[string]HealthCheck, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if g == nil {
		g = gate.NewOpenGate()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		gate:           g,
		healthChecks:   healthChecks,
		fingerprints:   utils.NewHasher(cfg.Auth.Secret),
		appName:        cfg.App.Name,
		production:     cfg.App.IsProduction(),
		requestTimeout: cfg.Server.RequestTimeout,
		startedAt:      time.Now(),
		logger:         logger,
	}
}
