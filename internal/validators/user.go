// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-gate/models"
	"github.com/go-playground/validator/v10"
)

// Field names used for field-level scoping and in reported errors.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldID       = "id"

	// FieldBody is reported when the payload as a whole is rejected.
	FieldBody = "body"
)

const (
	tagBcryptLen = "bcryptlen"

	// bcryptMaxBytes is the longest input bcrypt accepts.
	bcryptMaxBytes = 72
)

// UserValidator validates the account payloads: sign-up, sign-in and user
// patches. Rules are declared as `validate` struct tags on the models.
type UserValidator struct {
	v *validator.Validate
}

// NewUserValidator constructs a UserValidator. Reported field names follow
// the JSON tags of the models.
func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(tagBcryptLen, func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= bcryptMaxBytes
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &UserValidator{v: v}
}

// Validate checks obj against its schema. Supported types are
// models.SignUpRequest, models.SignInRequest and models.UserPatch, by value
// or pointer. When fields are given, only violations on those fields are
// reported.
func (uv *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest, *models.SignUpRequest, models.SignInRequest, *models.SignInRequest:
		return uv.validateStruct(ctx, value, fields)
	case models.UserPatch:
		return uv.validatePatch(ctx, &value, fields)
	case *models.UserPatch:
		return uv.validatePatch(ctx, value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (uv *UserValidator) validatePatch(ctx context.Context, patch *models.UserPatch, fields []string) error {
	if patch == nil {
		return newValidationError(models.FieldError{Field: FieldBody, Message: ErrNoFieldsToUpdate.Error()})
	}

	var out []models.FieldError
	if patch.ID != nil && wanted(fields, FieldID) {
		out = append(out, models.FieldError{Field: FieldID, Message: ErrIDImmutable.Error()})
	}
	if patch.IsEmpty() && len(fields) == 0 {
		out = append(out, models.FieldError{Field: FieldBody, Message: ErrNoFieldsToUpdate.Error()})
	}

	if err := uv.validateStruct(ctx, patch, fields); err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		for _, f := range ve.Fields {
			// the id rule is already reported with a clearer message
			if f.Field != FieldID {
				out = append(out, f)
			}
		}
	}

	if len(out) > 0 {
		return newValidationError(out...)
	}
	return nil
}

func (uv *UserValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	err := uv.v.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	out := make([]models.FieldError, 0, len(ve))
	for _, fe := range ve {
		if !wanted(fields, fe.Field()) {
			continue
		}
		out = append(out, models.FieldError{Field: fe.Field(), Message: fieldError(fe)})
	}
	if len(out) == 0 {
		return nil
	}

	return newValidationError(out...)
}

func wanted(fields []string, field string) bool {
	return len(fields) == 0 || slices.Contains(fields, field)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case tagBcryptLen:
		return fmt.Sprintf("%s must be at most %d bytes", field, bcryptMaxBytes)
	case "isdefault":
		return field + " must not be set"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
