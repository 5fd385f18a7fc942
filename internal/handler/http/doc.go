// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, metrics, response compression, caller
// identification and the per-request gate run in this package before
// requests are delegated to the service layer. Every error leaves through
// one JSON envelope built in errors_mapper.go.
package http
