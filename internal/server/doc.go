// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the process lifecycle: startup, background workers, signal
// handling, and graceful shutdown bounded by the configured timeout.
package server
