// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/validators"
	"github.com/MKhiriev/go-user-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerAuthService struct {
	signUpFn func(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error)
	signInFn func(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error)
}

func (m *mockInnerAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockInnerAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockInnerAuthService) ParseToken(context.Context, string) (models.Claims, error) {
	return models.Claims{}, nil
}

func (m *mockInnerAuthService) TokenTTL() time.Duration { return time.Minute }

type mockInnerUserService struct {
	updateFn func(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error)
}

func (m *mockInnerUserService) ListUsers(context.Context, models.Claims) ([]models.User, error) {
	return nil, nil
}

func (m *mockInnerUserService) GetUser(context.Context, models.Claims, int64) (models.User, error) {
	return models.User{}, nil
}

func (m *mockInnerUserService) UpdateUser(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, id, patch)
	}
	return models.User{}, nil
}

func (m *mockInnerUserService) DeleteUser(context.Context, models.Claims, int64) error {
	return nil
}

// ─────────────────────────────────────────────
// AuthValidationService
// ─────────────────────────────────────────────

func TestAuthValidationService_SignUp_InvalidStopsEarly(t *testing.T) {
	called := false
	svc := NewAuthValidationService(validators.NewUserValidator()).Wrap(&mockInnerAuthService{
		signUpFn: func(context.Context, models.SignUpRequest) (models.User, models.Token, error) {
			called = true
			return models.User{}, models.Token{}, nil
		},
	})

	_, _, err := svc.SignUp(context.Background(), models.SignUpRequest{Name: "J", Email: "nope", Password: "123"})
	require.Error(t, err)
	assert.False(t, called, "inner service must not be called on invalid input")

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Fields, 3)
}

func TestAuthValidationService_SignUp_NormalizesEmail(t *testing.T) {
	var got models.SignUpRequest
	svc := NewAuthValidationService(validators.NewUserValidator()).Wrap(&mockInnerAuthService{
		signUpFn: func(_ context.Context, req models.SignUpRequest) (models.User, models.Token, error) {
			got = req
			return models.User{ID: 1}, models.Token{}, nil
		},
	})

	_, _, err := svc.SignUp(context.Background(), models.SignUpRequest{Name: "John", Email: "  John@Example.COM ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", got.Email)
}

func TestAuthValidationService_SignIn(t *testing.T) {
	svc := NewAuthValidationService(validators.NewUserValidator()).Wrap(&mockInnerAuthService{})

	_, _, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "john@example.com"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, _, err = svc.SignIn(context.Background(), models.SignInRequest{Email: "john@example.com", Password: "x"})
	assert.NoError(t, err)

	assert.Equal(t, time.Minute, svc.TokenTTL())
}

// ─────────────────────────────────────────────
// UserValidationService
// ─────────────────────────────────────────────

func TestUserValidationService_UpdateUser(t *testing.T) {
	calls := 0
	svc := NewUserValidationService(validators.NewUserValidator()).Wrap(&mockInnerUserService{
		updateFn: func(context.Context, models.Claims, int64, models.UserPatch) (models.User, error) {
			calls++
			return models.User{}, nil
		},
	})
	ctx := context.Background()

	_, err := svc.UpdateUser(ctx, userCaller, 2, models.UserPatch{})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdateUser(ctx, userCaller, 2, models.UserPatch{ID: ptr(int64(5)), Name: ptr("Neo")})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdateUser(ctx, userCaller, 2, models.UserPatch{Role: ptr(models.Role("root"))})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.UpdateUser(ctx, userCaller, 2, models.UserPatch{Email: ptr(" NEO@example.com ")})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}
