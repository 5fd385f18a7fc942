// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	if expected := mac.Sum(nil); !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	a := NewHasher("key-a").Fingerprint("127.0.0.1", "curl/8.0")
	b := NewHasher("key-b").Fingerprint("127.0.0.1", "curl/8.0")

	if a == b {
		t.Fatal("fingerprints with different keys must differ")
	}
}

func TestHasher_FingerprintSeparatesParts(t *testing.T) {
	h := NewHasher(testHashKey)

	if h.Fingerprint("ab", "c") == h.Fingerprint("a", "bc") {
		t.Fatal("fingerprint must not collide when parts are regrouped")
	}
	if got := h.Fingerprint("x"); len(got) != hex.EncodedLen(sha256.Size) {
		t.Fatalf("unexpected fingerprint length %d", len(got))
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.Fingerprint("ip:10.0.0.1")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.Fingerprint("ip:10.0.0.1"); got != want {
				t.Errorf("concurrent fingerprint mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
