// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-user-gate/internal/gate"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/metrics"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/models"
)

// withGate asks the gate about every request and enforces the verdict.
// Authenticated callers are budgeted per user id, guests per client IP.
// A gate failure lets the request through.
func (h *Handler) withGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok {
			claims = models.GuestClaims()
		}

		ip := clientIP(r)
		req := gate.Request{
			Role:        claims.Role,
			Fingerprint: h.fingerprint(claims, ip),
			IP:          ip,
			UserAgent:   r.UserAgent(),
			Method:      r.Method,
			Path:        r.URL.Path,
		}

		verdict, err := h.gate.Evaluate(r.Context(), req)
		if err != nil {
			metrics.GateDecisionsTotal.WithLabelValues(string(req.Role), "error", "").Inc()
			log.Warn().Err(err).Str("role", req.Role.String()).Msg("gate unavailable, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		if verdict.Allowed {
			metrics.GateDecisionsTotal.WithLabelValues(string(req.Role), "allow", "").Inc()
			next.ServeHTTP(w, r)
			return
		}

		metrics.GateDecisionsTotal.WithLabelValues(string(req.Role), "deny", string(verdict.Reason)).Inc()

		switch verdict.Reason {
		case gate.ReasonRateLimited:
			w.Header().Set("Retry-After", strconv.Itoa(max(1, int(math.Ceil(verdict.Reset.Seconds())))))
			h.writeError(w, r, ErrRateLimited)
		case gate.ReasonBotDetected:
			h.writeError(w, r, ErrBotDetected)
		default:
			h.writeError(w, r, ErrShieldDenied)
		}
	})
}

func (h *Handler) fingerprint(claims models.Claims, ip string) string {
	if claims.IsAuthenticated() {
		return h.fingerprints.Fingerprint("user", strconv.FormatInt(claims.UserID, 10))
	}
	return h.fingerprints.Fingerprint("ip", ip)
}

// clientIP strips the port from RemoteAddr. RealIP may already have replaced
// it with a bare address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
