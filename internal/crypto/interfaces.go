// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into one-way digests and checks
// candidates against them. It never returns or logs the plaintext.
type PasswordHasher interface {
	// Hash returns a salted digest of plain. A failure here is an internal
	// error for the calling request.
	Hash(plain string) (string, error)

	// Compare reports whether plain matches hash. A mismatch is (false, nil);
	// an error is returned only when hash itself is malformed.
	Compare(hash, plain string) (bool, error)
}
