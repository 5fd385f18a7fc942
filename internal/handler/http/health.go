// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/models"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusDown     = "down"

	healthCheckTimeout = 2 * time.Second
)

// health answers liveness probes on GET / and GET /health.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{
		Status:    statusOK,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Seconds(),
	}, http.StatusOK)
}

// ready pings every dependency and answers 503 if any of them fails.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	names := make([]string, 0, len(h.healthChecks))
	for name := range h.healthChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := models.ReadinessResponse{
		Status:       statusReady,
		Dependencies: make(map[string]models.DependencyStatus, len(names)),
	}
	status := http.StatusOK

	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := h.healthChecks[name](ctx)
		cancel()

		if err != nil {
			log.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			dep := models.DependencyStatus{Status: statusDown}
			if !h.production {
				dep.Error = err.Error()
			}
			resp.Dependencies[name] = dep
			resp.Status = statusNotReady
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Dependencies[name] = models.DependencyStatus{Status: statusOK}
	}

	utils.WriteJSON(w, resp, status)
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIInfoResponse{
		Name:    h.appName,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
		Status:  statusOK,
	}, http.StatusOK)
}
