// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// the listener fails. It then shuts down gracefully and returns.
type Server interface {
	RunServer(ctx context.Context) error
}
