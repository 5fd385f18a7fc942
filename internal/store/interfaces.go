// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-gate/models"
)

// UserRepository persists user accounts. Emails passed in are expected to be
// normalized already; uniqueness is enforced by the database.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row with its id and
	// timestamps. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns [ErrUserNotFound] when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns every user ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the new
	// row. Returns [ErrUserNotFound] or [ErrEmailAlreadyExists].
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the row. Returns [ErrUserNotFound] and changes
	// nothing when id is unknown.
	DeleteUser(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
