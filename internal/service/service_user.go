// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/crypto"
	"github.com/MKhiriev/go-user-gate/internal/logger"
	"github.com/MKhiriev/go-user-gate/internal/store"
	"github.com/MKhiriev/go-user-gate/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	now    func() time.Time
	logger *logger.Logger
}

// NewUserService constructs a UserService over userRepository. The hasher is
// used when a patch carries a new password.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, caller models.Claims) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if !caller.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if caller.Role != models.RoleAdmin {
		log.Info().Int64("caller_id", caller.UserID).Str("role", caller.Role.String()).Msg("user listing denied")
		return nil, ErrForbidden
	}

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, caller models.Claims, id int64) (models.User, error) {
	if !caller.IsAuthenticated() {
		return models.User{}, ErrUnauthenticated
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, s.mapStoreError(ctx, err, id)
	}

	return user, nil
}

// UpdateUser applies patch to the account id. A new password is hashed and an
// email is normalized before reaching the repository.
func (s *userService) UpdateUser(ctx context.Context, caller models.Claims, id int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.authorizeOwnerOrAdmin(ctx, caller, id); err != nil {
		return models.User{}, err
	}
	if patch.Role != nil && caller.Role != models.RoleAdmin {
		log.Info().Int64("caller_id", caller.UserID).Int64("user_id", id).Msg("role change denied")
		return models.User{}, ErrForbidden
	}

	update := models.UserUpdate{
		ID:        id,
		Role:      patch.Role,
		UpdatedAt: s.now().UTC(),
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		update.Name = &name
	}
	if patch.Email != nil {
		email := models.NormalizeEmail(*patch.Email)
		update.Email = &email
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			log.Err(err).Int64("user_id", id).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		update.PasswordHash = &hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		return models.User{}, s.mapStoreError(ctx, err, id)
	}

	log.Info().Int64("caller_id", caller.UserID).Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, caller models.Claims, id int64) error {
	if err := s.authorizeOwnerOrAdmin(ctx, caller, id); err != nil {
		return err
	}

	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return s.mapStoreError(ctx, err, id)
	}

	logger.FromContext(ctx).Info().Int64("caller_id", caller.UserID).Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) authorizeOwnerOrAdmin(ctx context.Context, caller models.Claims, id int64) error {
	if !caller.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if caller.Role == models.RoleAdmin || caller.UserID == id {
		return nil
	}

	logger.FromContext(ctx).Info().
		Int64("caller_id", caller.UserID).
		Int64("user_id", id).
		Msg("access to foreign account denied")
	return ErrForbidden
}

func (s *userService) mapStoreError(ctx context.Context, err error, id int64) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyExists
	default:
		logger.FromContext(ctx).Err(err).Int64("user_id", id).Msg("user repository call failed")
		return fmt.Errorf("user repository call failed: %w", err)
	}
}
