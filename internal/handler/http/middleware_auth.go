// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/models"
)

// identify resolves the caller and stores its claims in the request context.
//
// The token is read from the "Authorization: Bearer" header or, when the
// header is absent, from the auth cookie. Requests without a usable token
// continue as guests; the reason a token was rejected is logged only.
// Rejection of guests, if any, is left to requireAuth.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		claims := models.GuestClaims()

		tokenString, source, err := tokenFromRequest(r)
		switch {
		case err != nil:
			log.Debug().Err(err).Str("source", source).Msg("malformed credentials, continuing as guest")
		case tokenString != "":
			parsed, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				log.Info().Err(err).Str("source", source).Msg("token rejected, continuing as guest")
				break
			}
			claims = parsed
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// tokenFromRequest returns the raw token and where it came from. The header
// wins when both header and cookie are present.
func tokenFromRequest(r *http.Request) (token, source string, err error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err = utils.ParseBearerToken(header)
		return token, "header", err
	}

	if token, ok := readAuthCookie(r); ok {
		return token, "cookie", nil
	}

	return "", "", nil
}

// requireAuth rejects callers that identify did not authenticate.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := utils.GetClaimsFromContext(r.Context())
		if !ok || !claims.IsAuthenticated() {
			h.writeError(w, r, service.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRole admits only callers whose verified role is one of roles.
// It must run after requireAuth.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := utils.GetClaimsFromContext(r.Context())
			if !slices.Contains(roles, claims.Role) {
				logger.FromRequest(r).Info().
					Int64("user_id", claims.UserID).
					Str("role", claims.Role.String()).
					Str("path", r.URL.Path).
					Msg("role not permitted")
				h.writeError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
