// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach business
// logic.
//
// Validation is fail-fast: a payload that violates its schema is rejected as
// a whole with a *ValidationError listing every offending field, before the
// password hasher or the repository are touched.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields (JSON names).
	Validate(context.Context, any, ...string) error
}
