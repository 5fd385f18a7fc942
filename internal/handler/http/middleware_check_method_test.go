// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownRoutesAndMethods(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/nope"},
		{name: "unknown api path", method: http.MethodGet, path: "/api/nope"},
		{name: "GET on sign-up", method: http.MethodGet, path: "/api/auth/sign-up"},
		{name: "PATCH on user", method: http.MethodPatch, path: "/api/users/1"},
		{name: "POST on health", method: http.MethodPost, path: "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, tt.method, tt.path, "", withBearer(adminToken))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
			body := decodeError(t, rr)
			assert.Equal(t, codeNotFound, body.Code)
			assert.Equal(t, ErrRouteNotFound.Error(), body.Error)
		})
	}
}
