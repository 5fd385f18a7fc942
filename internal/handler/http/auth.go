// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-gate/internal/app"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/metrics"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/internal/validators"
	"github.com/MKhiriev/go-user-gate/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.SignUp(ctx, req)
	metrics.AuthEventsTotal.WithLabelValues("sign_up", authResult(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setAuthCookie(w, token.String(), h.services.AuthService.TokenTTL())

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserRegistered,
		User:    user,
		Token:   token.String(),
	}, http.StatusCreated)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.SignIn(ctx, req)
	metrics.AuthEventsTotal.WithLabelValues("sign_in", authResult(err)).Inc()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.setAuthCookie(w, token.String(), h.services.AuthService.TokenTTL())

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgSignedIn,
		User:    user,
		Token:   token.String(),
	}, http.StatusOK)
}

// signOut only clears the cookie. Issued tokens stay valid until they
// expire.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	h.clearAuthCookie(w)
	metrics.AuthEventsTotal.WithLabelValues("sign_out", "success").Inc()

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgSignedOut}, http.StatusOK)
}

// authResult is the result label of metrics.AuthEventsTotal.
func authResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, validators.ErrValidation):
		return "validation_error"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return "email_exists"
	default:
		return "error"
	}
}
