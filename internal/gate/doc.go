// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gate decides, per inbound request, whether the caller may proceed.
//
// The decision combines a bot heuristic with a per-role request budget. The
// HTTP layer only enforces the returned [Verdict]; where the decision is made
// depends on the configured mode:
//
//   - remote: an external decision service is called over HTTP.
//   - redis:  a fixed window counter shared by every replica.
//   - local:  an in-process token bucket per fingerprint.
//   - off:    every request is allowed.
package gate
