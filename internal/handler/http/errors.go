// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidUserID is returned when the {id} path parameter is not a
	// positive integer.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrRouteNotFound is written for unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrRateLimited, ErrBotDetected and ErrShieldDenied mirror gate denials.
	ErrRateLimited  = errors.New("too many requests")
	ErrBotDetected  = errors.New("automated traffic is not allowed")
	ErrShieldDenied = errors.New("request blocked")
)
