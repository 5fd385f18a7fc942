// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/internal/crypto"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/store"
	"github.com/MKhiriev/go-user-gate/internal/utils"
	"github.com/MKhiriev/go-user-gate/models"
)

// authService is the concrete implementation of AuthService.
// It stores bcrypt digests via the PasswordHasher and issues HS256 tokens.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher, with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.Secret,
		tokenIssuer:    cfg.Issuer,
		tokenDuration:  cfg.ExpiresIn.Std(),
		now:            time.Now,
		logger:         logger,
	}
}

// SignUp creates a new account with the default role unless one is given.
//
// Returns the persisted user with a signed token or:
//   - ErrEmailAlreadyExists if the normalized email is taken.
//   - ErrPasswordHashing if bcrypt fails.
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("email", email).Msg("sign-up rejected: email already registered")
		return models.User{}, models.Token{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	now := a.now().UTC()
	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("email", email).Msg("sign-up lost a race for the email")
		return models.User{}, models.Token{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(created)
	if err != nil {
		log.Err(err).Int64("user_id", created.ID).Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	log.Info().Int64("user_id", created.ID).Str("role", created.Role.String()).Msg("user signed up")
	return created, token, nil
}

// SignIn authenticates an existing user.
//
// Returns the stored user with a signed token or ErrInvalidCredentials when
// either the email is unknown or the password does not match.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", email).Str("reason", "unknown email").Msg("sign-in rejected")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := a.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Str("reason", "wrong password").Msg("sign-in rejected")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenExpired; every other failure yields
// ErrTokenInvalid. The underlying reason stays in the wrapped chain.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, utils.ErrTokenExpired) {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	}
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return claims, nil
}

func (a *authService) TokenTTL() time.Duration {
	return a.tokenDuration
}

func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
