// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Role is the authorization level attached to a user account and carried in
// every issued token.
type Role string

const (
	// RoleAdmin may list, update and delete any account.
	RoleAdmin Role = "admin"

	// RoleUser is the default role assigned at sign-up.
	RoleUser Role = "user"

	// RoleGuest is the implicit role of unauthenticated callers.
	// It is never persisted.
	RoleGuest Role = "guest"
)

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsPersistable reports whether r may be stored on a user record.
func (r Role) IsPersistable() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an account entity used for authentication and authorization.
// PasswordHash is never exposed via JSON.
type User struct {
	// ID is assigned by the store at creation time and never changes.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is unique across all users and always stored normalized
	// (see NormalizeEmail).
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// Role defines what the user is allowed to do.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch describes a partial update of a user account.
// Only non-nil fields are applied.
type UserPatch struct {
	// ID must stay empty; it is present so that an attempt to change the
	// identifier is reported as a validation error instead of being ignored.
	ID *int64 `json:"id,omitempty" validate:"isdefault"`

	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72,bcryptlen"`
	Role     *Role   `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// IsEmpty reports whether the patch carries no changes at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Role == nil
}

// UserUpdate is the storage-level form of a [UserPatch]: the password is
// already hashed and the email normalized.
type UserUpdate struct {
	ID           int64
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
	UpdatedAt    time.Time
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
