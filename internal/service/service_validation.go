// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/validators"
	"github.com/MKhiriev/go-user-gate/models"
)

// AuthValidationService rejects malformed sign-up and sign-in payloads before
// they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error) {
	req.Email = models.NormalizeEmail(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during sign-up validation: %w", err)
	}

	return v.inner.SignUp(ctx, req)
}

func (v *AuthValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error) {
	req.Email = models.NormalizeEmail(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during sign-in validation: %w", err)
	}

	return v.inner.SignIn(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) TokenTTL() time.Duration {
	return v.inner.TokenTTL()
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService validates user patches before they reach the wrapped
// UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) ListUsers(ctx context.Context, caller models.Claims) ([]models.User, error) {
	return v.inner.ListUsers(ctx, caller)
}

func (v *UserValidationService) GetUser(ctx context.Context, caller models.Claims, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, caller, id)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error) {
	if patch.Email != nil {
		email := models.NormalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.User{}, fmt.Errorf("error during user patch validation: %w", err)
	}

	return v.inner.UpdateUser(ctx, caller, id, patch)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, caller models.Claims, id int64) error {
	return v.inner.DeleteUser(ctx, caller, id)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
