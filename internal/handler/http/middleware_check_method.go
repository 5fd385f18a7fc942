// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-gate/internal/logger"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 whenever a path
// matches a registered route but the method is not handled. This handler
// answers with the JSON 404 envelope instead, hiding the existence of the
// route from callers that use an unsupported method.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not allowed")
	h.writeError(w, r, ErrRouteNotFound)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, ErrRouteNotFound)
}
