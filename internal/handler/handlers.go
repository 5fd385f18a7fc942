// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/gate"
	"github.com/MKhiriev/go-user-gate/internal/handler/http"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// Dependencies are the collaborators every transport handler needs.
type Dependencies struct {
	Services     *service.Services
	Gate         gate.Gate
	HealthChecks map[string]http.HealthCheck
}

func NewHandlers(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(deps.Services, deps.Gate, deps.HealthChecks, cfg, logger),
	}, nil
}
