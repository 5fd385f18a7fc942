// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-gate/models"
)

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	// SignUp creates an account and returns it with a freshly issued token.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error)

	// SignIn checks credentials and returns the account with a new token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error)

	// ParseToken verifies tokenString and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)

	// TokenTTL is the lifetime of issued tokens.
	TokenTTL() time.Duration
}

// UserService manages accounts on behalf of an authenticated caller.
//
// Capability rules: listing requires admin; reading any account requires
// authentication; updating and deleting require the account owner or admin;
// changing a role requires admin.
type UserService interface {
	ListUsers(ctx context.Context, caller models.Claims) ([]models.User, error)
	GetUser(ctx context.Context, caller models.Claims, id int64) (models.User, error)
	UpdateUser(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, caller models.Claims, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper decorates a UserService, e.g. with input validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
