// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-gate/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "secret-key"
)

var testUser = models.User{ID: 123, Email: "john@example.com", Role: models.RoleUser}

// ── GenerateJWTToken ──────────────────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser, time.Hour, testKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.Equal(t, "123", token.Claims.Subject)
	assert.Equal(t, int64(123), token.Claims.UserID)
	assert.Equal(t, "john@example.com", token.Claims.Email)
	assert.Equal(t, models.RoleUser, token.Claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Claims.ExpiresAt.Time, 2*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testUser, time.Hour, testKey},
		{"zero duration", testIssuer, testUser, 0, testKey},
		{"negative duration", testIssuer, testUser, -time.Second, testKey},
		{"empty key", testIssuer, testUser, time.Hour, ""},
		{"user without id", testIssuer, models.User{Email: "x@y.z"}, time.Hour, testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.user, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

// ── ValidateAndParseJWTToken ──────────────────────────────────────────────────

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	for _, role := range []models.Role{models.RoleUser, models.RoleAdmin} {
		t.Run(role.String(), func(t *testing.T) {
			user := testUser
			user.Role = role

			token, err := GenerateJWTToken(testIssuer, user, time.Hour, testKey)
			require.NoError(t, err)

			claims, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)
			assert.Equal(t, user.Email, claims.Email)
			assert.Equal(t, role, claims.Role)
			assert.True(t, claims.IsAuthenticated())
		})
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "123",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: 123,
		Role:   models.RoleUser,
	}
	signed := sign(t, jwt.SigningMethodHS256, claims, testKey)

	_, err := ValidateAndParseJWTToken(signed, testKey, testIssuer)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateAndParseJWTToken_Invalid(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, testUser, time.Hour, testKey)
	require.NoError(t, err)

	baseClaims := func() models.Claims {
		return models.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    testIssuer,
				Subject:   "123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			UserID: 123,
			Role:   models.RoleUser,
		}
	}

	noExp := baseClaims()
	noExp.ExpiresAt = nil

	subjectMismatch := baseClaims()
	subjectMismatch.Subject = "999"

	guestRole := baseClaims()
	guestRole.Role = models.RoleGuest

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other-key"},
		{name: "garbage", token: "not.a.jwt", key: testKey},
		{name: "empty", token: "", key: testKey},
		{name: "tampered payload", token: tamper(valid.SignedString), key: testKey},
		{name: "wrong issuer", token: mustGenerate(t, "other-issuer"), key: testKey},
		{name: "missing exp", token: sign(t, jwt.SigningMethodHS256, noExp, testKey), key: testKey},
		{name: "subject mismatch", token: sign(t, jwt.SigningMethodHS256, subjectMismatch, testKey), key: testKey},
		{name: "guest role", token: sign(t, jwt.SigningMethodHS256, guestRole, testKey), key: testKey},
		{name: "other hmac alg", token: sign(t, jwt.SigningMethodHS512, baseClaims(), testKey), key: testKey},
		{name: "alg none", token: sign(t, jwt.SigningMethodNone, baseClaims(), jwt.UnsafeAllowNoneSignatureType), key: testKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, testIssuer)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

// ── ParseBearerToken ──────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Helpers

func sign(t *testing.T, method jwt.SigningMethod, claims models.Claims, key any) string {
	t.Helper()
	if k, ok := key.(string); ok {
		key = []byte(k)
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func mustGenerate(t *testing.T, issuer string) string {
	t.Helper()
	token, err := GenerateJWTToken(issuer, testUser, time.Hour, testKey)
	require.NoError(t, err)
	return token.SignedString
}

func tamper(token string) string {
	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"
	return strings.Join(parts, ".")
}
