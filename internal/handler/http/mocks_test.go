// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/gate"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/service"
	"github.com/MKhiriev/go-user-gate/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	signUpFn     func(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error)
	signInFn     func(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error)
	parseTokenFn func(ctx context.Context, token string) (models.Claims, error)
	ttl          time.Duration
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, req)
	}
	return models.User{}, models.Token{}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, token)
	}
	return models.Claims{}, service.ErrTokenInvalid
}

func (m *mockAuthService) TokenTTL() time.Duration {
	if m.ttl == 0 {
		return time.Hour
	}
	return m.ttl
}

type mockUserService struct {
	listFn   func(ctx context.Context, caller models.Claims) ([]models.User, error)
	getFn    func(ctx context.Context, caller models.Claims, id int64) (models.User, error)
	updateFn func(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error)
	deleteFn func(ctx context.Context, caller models.Claims, id int64) error
}

func (m *mockUserService) ListUsers(ctx context.Context, caller models.Claims) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller)
	}
	return nil, nil
}

func (m *mockUserService) GetUser(ctx context.Context, caller models.Claims, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, caller, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, id, patch)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, caller models.Claims, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, id)
	}
	return nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var (
	adminClaims = models.Claims{UserID: 1, Email: "admin@example.com", Role: models.RoleAdmin}
	userClaims  = models.Claims{UserID: 2, Email: "user@example.com", Role: models.RoleUser}
)

// tokenParser accepts adminToken and userToken and rejects everything else.
func tokenParser(_ context.Context, token string) (models.Claims, error) {
	switch token {
	case adminToken:
		return adminClaims, nil
	case userToken:
		return userClaims, nil
	default:
		return models.Claims{}, service.ErrTokenInvalid
	}
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App:    config.App{Env: config.EnvTest, Name: "go-user-gate", Version: "test-version"},
		Auth:   config.Auth{Secret: "secret"},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}
}

// newTestHandler builds a Handler with a nop logger and an open gate.
func newTestHandler() *Handler {
	return newTestHandlerWith(&service.Services{
		AuthService:    &mockAuthService{parseTokenFn: tokenParser},
		UserService:    &mockUserService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, nil)
}

func newTestHandlerWith(services *service.Services, g gate.Gate) *Handler {
	return NewHandler(services, g, nil, testConfig(), logger.Nop())
}
