// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded, verified payload of a bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (iss, sub, iat,
// exp) and adds the identity fields every authenticated request needs, so
// handlers never have to go back to the store to learn who the caller is.
type Claims struct {
	jwt.RegisteredClaims

	// UserID mirrors the "sub" claim as an integer.
	UserID int64 `json:"id"`

	// Email is the normalized email of the user at issuance time.
	Email string `json:"email"`

	// Role is the user's role at issuance time. A role change takes effect
	// only after the user signs in again.
	Role Role `json:"role"`
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Claims are the values embedded into the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// GuestClaims returns the claims of an unauthenticated caller.
func GuestClaims() Claims {
	return Claims{Role: RoleGuest}
}

// IsAuthenticated reports whether c belongs to a signed-in user.
func (c Claims) IsAuthenticated() bool {
	return c.UserID != 0 && c.Role != RoleGuest
}
