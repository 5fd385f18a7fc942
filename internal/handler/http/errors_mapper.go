// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-gate/internal/app"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/internal/validators"
	"github.com/MKhiriev/go-user-gate/models"
)

// Stable error codes of the JSON error envelope.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthenticated    = "UNAUTHENTICATED"
	codeForbidden          = "FORBIDDEN"
	codeBotDetected        = "BOT_DETECTED"
	codeNotFound           = "NOT_FOUND"
	codeEmailExists        = "EMAIL_EXISTS"
	codeRateLimited        = "RATE_LIMITED"
	codeInternal           = "INTERNAL_ERROR"
)

type apiError struct {
	status  int
	code    string
	message string
}

// errorStatusMap is checked in order; the first target matched with
// errors.Is wins. Expired and invalid tokens share one body so clients
// cannot tell them apart.
var errorStatusMap = []struct {
	target error
	apiError
}{
	{validators.ErrValidation, apiError{http.StatusBadRequest, codeValidation, app.MsgValidationFailed}},
	{ErrInvalidJSON, apiError{http.StatusBadRequest, codeValidation, ErrInvalidJSON.Error()}},
	{ErrInvalidUserID, apiError{http.StatusBadRequest, codeValidation, ErrInvalidUserID.Error()}},

	{service.ErrInvalidCredentials, apiError{http.StatusUnauthorized, codeInvalidCredentials, service.ErrInvalidCredentials.Error()}},
	{service.ErrTokenExpired, apiError{http.StatusUnauthorized, codeUnauthenticated, service.ErrUnauthenticated.Error()}},
	{service.ErrTokenInvalid, apiError{http.StatusUnauthorized, codeUnauthenticated, service.ErrUnauthenticated.Error()}},
	{utils.ErrInvalidAuthHeader, apiError{http.StatusUnauthorized, codeUnauthenticated, service.ErrUnauthenticated.Error()}},
	{service.ErrUnauthenticated, apiError{http.StatusUnauthorized, codeUnauthenticated, service.ErrUnauthenticated.Error()}},

	{service.ErrForbidden, apiError{http.StatusForbidden, codeForbidden, service.ErrForbidden.Error()}},
	{ErrShieldDenied, apiError{http.StatusForbidden, codeForbidden, ErrShieldDenied.Error()}},
	{ErrBotDetected, apiError{http.StatusForbidden, codeBotDetected, ErrBotDetected.Error()}},

	{service.ErrUserNotFound, apiError{http.StatusNotFound, codeNotFound, service.ErrUserNotFound.Error()}},
	{ErrRouteNotFound, apiError{http.StatusNotFound, codeNotFound, ErrRouteNotFound.Error()}},

	{service.ErrEmailAlreadyExists, apiError{http.StatusConflict, codeEmailExists, service.ErrEmailAlreadyExists.Error()}},

	{ErrRateLimited, apiError{http.StatusTooManyRequests, codeRateLimited, ErrRateLimited.Error()}},
}

var internalError = apiError{http.StatusInternalServerError, codeInternal, app.MsgInternalServerError}

func apiErrorFrom(err error) apiError {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.apiError
		}
	}
	return internalError
}

func statusFromError(err error) int {
	return apiErrorFrom(err).status
}

// writeError renders err as the JSON error envelope. Field details are added
// for validation failures; the internal cause is added to 5xx responses
// outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	ae := apiErrorFrom(err)

	body := models.ErrorResponse{
		Error: ae.message,
		Code:  ae.code,
	}

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		body.Details = vErr.Fields
	}

	if ae.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", ae.status).Msg("request failed")
		if !h.production {
			body.Cause = err.Error()
		}
	} else {
		log.Info().Err(err).Int("status", ae.status).Str("code", ae.code).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, body, ae.status); wErr != nil {
		log.Err(wErr).Msg("writing error response failed")
	}
}
