// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing backed by a pool of reusable
// hash instances. It is safe for concurrent use.
//
// The gate uses it to turn "user:<id>" or "ip:<addr>" into an opaque
// fingerprint, so raw addresses never end up as rate-limit keys.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes the HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	hs := h.pool.Get().(hash.Hash)
	hs.Reset()

	hs.Write(data)
	sum := hs.Sum(nil)

	hs.Reset()
	h.pool.Put(hs)

	return sum
}

// Fingerprint joins parts with a NUL separator and returns the hex-encoded
// digest of the result. The separator keeps ("ab", "c") and ("a", "bc")
// apart.
func (h *Hasher) Fingerprint(parts ...string) string {
	return hex.EncodeToString(h.Sum([]byte(strings.Join(parts, "\x00"))))
}
