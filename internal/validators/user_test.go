// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

func validSignUp() models.SignUpRequest {
	return models.SignUpRequest{Name: "John", Email: "john@example.com", Password: "password123"}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %T: %v", err, err)
	out := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		out = append(out, f.Field)
	}
	return out
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserValidator_AcceptsPointers(t *testing.T) {
	v := NewUserValidator()
	req := validSignUp()

	assert.NoError(t, v.Validate(context.Background(), &req))
	assert.NoError(t, v.Validate(context.Background(), &models.SignInRequest{Email: "a@b.co", Password: "x"}))
	assert.NoError(t, v.Validate(context.Background(), &models.UserPatch{Name: ptr("Jane")}))
}

// ---------------------------------------------------------------------------
// Sign-up
// ---------------------------------------------------------------------------

func TestUserValidator_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *models.SignUpRequest)
		wantFields []string
	}{
		{name: "valid", mutate: func(*models.SignUpRequest) {}},
		{name: "valid admin role", mutate: func(r *models.SignUpRequest) { r.Role = models.RoleAdmin }},
		{name: "missing name", mutate: func(r *models.SignUpRequest) { r.Name = "" }, wantFields: []string{FieldName}},
		{name: "short name", mutate: func(r *models.SignUpRequest) { r.Name = "J" }, wantFields: []string{FieldName}},
		{name: "bad email", mutate: func(r *models.SignUpRequest) { r.Email = "john" }, wantFields: []string{FieldEmail}},
		{name: "short password", mutate: func(r *models.SignUpRequest) { r.Password = "12345" }, wantFields: []string{FieldPassword}},
		{name: "password over 72 bytes", mutate: func(r *models.SignUpRequest) { r.Password = strings.Repeat("й", 40) }, wantFields: []string{FieldPassword}},
		{name: "guest role", mutate: func(r *models.SignUpRequest) { r.Role = models.RoleGuest }, wantFields: []string{FieldRole}},
		{name: "everything wrong", mutate: func(r *models.SignUpRequest) { *r = models.SignUpRequest{} }, wantFields: []string{FieldName, FieldEmail, FieldPassword}},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignUp()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ElementsMatch(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestUserValidator_Messages(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.SignUpRequest{Name: "John", Email: "nope", Password: "123"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 2)

	msgs := map[string]string{}
	for _, f := range ve.Fields {
		msgs[f.Field] = f.Message
	}
	assert.Equal(t, "email must be a valid email", msgs[FieldEmail])
	assert.Equal(t, "password must be at least 6 characters", msgs[FieldPassword])
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUserValidator_FieldScoping(t *testing.T) {
	req := models.SignUpRequest{Name: "J", Email: "nope", Password: "password123"}

	err := NewUserValidator().Validate(context.Background(), req, FieldEmail)
	assert.Equal(t, []string{FieldEmail}, fieldsOf(t, err))

	err = NewUserValidator().Validate(context.Background(), req, FieldPassword)
	assert.NoError(t, err)
}

// ---------------------------------------------------------------------------
// Sign-in
// ---------------------------------------------------------------------------

func TestUserValidator_SignIn(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.SignInRequest{Email: "john@example.com", Password: "anything"}))

	err := v.Validate(context.Background(), models.SignInRequest{})
	assert.ElementsMatch(t, []string{FieldEmail, FieldPassword}, fieldsOf(t, err))
}

// ---------------------------------------------------------------------------
// Patch
// ---------------------------------------------------------------------------

func TestUserValidator_Patch(t *testing.T) {
	tests := []struct {
		name       string
		patch      models.UserPatch
		wantFields []string
	}{
		{name: "name only", patch: models.UserPatch{Name: ptr("Jane")}},
		{name: "all fields", patch: models.UserPatch{
			Name: ptr("Jane"), Email: ptr("jane@example.com"), Password: ptr("secret99"), Role: ptr(models.RoleAdmin),
		}},
		{name: "empty", patch: models.UserPatch{}, wantFields: []string{FieldBody}},
		{name: "id set", patch: models.UserPatch{ID: ptr(int64(5)), Name: ptr("Jane")}, wantFields: []string{FieldID}},
		{name: "zero id set", patch: models.UserPatch{ID: ptr(int64(0)), Name: ptr("Jane")}, wantFields: []string{FieldID}},
		{name: "id only", patch: models.UserPatch{ID: ptr(int64(5))}, wantFields: []string{FieldID, FieldBody}},
		{name: "bad email", patch: models.UserPatch{Email: ptr("x")}, wantFields: []string{FieldEmail}},
		{name: "empty name", patch: models.UserPatch{Name: ptr("")}, wantFields: []string{FieldName}},
		{name: "short password", patch: models.UserPatch{Password: ptr("1")}, wantFields: []string{FieldPassword}},
		{name: "guest role", patch: models.UserPatch{Role: ptr(models.RoleGuest)}, wantFields: []string{FieldRole}},
	}

	v := NewUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.patch)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.ElementsMatch(t, tt.wantFields, fieldsOf(t, err))
		})
	}
}

func TestUserValidator_NilPatch(t *testing.T) {
	var patch *models.UserPatch
	err := NewUserValidator().Validate(context.Background(), patch)
	assert.Equal(t, []string{FieldBody}, fieldsOf(t, err))
}
