// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used by [NewPasswordHasher].
const DefaultCost = bcrypt.DefaultCost

// MaxPasswordBytes is the longest input bcrypt reads. Longer inputs never
// match a stored digest.
const MaxPasswordBytes = 72

var (
	// ErrHashPassword is returned when bcrypt fails to produce a digest.
	ErrHashPassword = errors.New("failed to hash password")
	// ErrMalformedHash is returned when a stored digest is not a bcrypt hash.
	ErrMalformedHash = errors.New("malformed password hash")
)

type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] with cost 10.
func NewPasswordHasher() PasswordHasher {
	return NewPasswordHasherWithCost(DefaultCost)
}

// NewPasswordHasherWithCost returns a bcrypt [PasswordHasher] with the given
// cost. Values outside bcrypt's range are clamped to [DefaultCost].
func NewPasswordHasherWithCost(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashPassword, err)
	}
	return string(digest), nil
}

func (h *bcryptHasher) Compare(hash, plain string) (bool, error) {
	if len(plain) > MaxPasswordBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}
