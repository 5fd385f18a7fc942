// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by sign-up and sign-in. The same token is also set
// as an HttpOnly cookie.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
}

// UsersResponse wraps a list of users.
type UsersResponse struct {
	Message string `json:"message,omitempty"`
	Users   []User `json:"users"`
	Count   int    `json:"count"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the canonical error envelope for all API errors.
type ErrorResponse struct {
	// Error is a human-readable message safe to show to clients.
	Error string `json:"error"`

	// Code is a stable machine-readable identifier (e.g. "EMAIL_EXISTS").
	Code string `json:"code"`

	// Details lists field-level violations for validation failures.
	Details []FieldError `json:"details,omitempty"`

	// Cause carries the internal error text. Only set outside production.
	Cause string `json:"cause,omitempty"`
}

// StatusResponse is returned by the liveness endpoints.
type StatusResponse struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// DependencyStatus reports the health of one backing service.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ReadinessResponse is returned by GET /health/ready.
type ReadinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// APIInfoResponse is returned by GET /api.
type APIInfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
