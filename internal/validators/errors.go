// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-gate/models"
)

var (
	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrIDImmutable      = errors.New("id cannot be changed")
)

// ValidationError carries the field-level violations of a rejected payload.
type ValidationError struct {
	Fields []models.FieldError
}

// Error joins the field messages.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap lets callers match with errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(fields ...models.FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
