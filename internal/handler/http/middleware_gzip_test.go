// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

// echo writes back "<prefix><request body>".
func echo(prefix string, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(status)
		w.Write(append([]byte(prefix), body...))
	})
}

func TestWithGZip_Response(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantGzip       bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip", wantGzip: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip, br", wantGzip: true},
		{name: "gzip with quality", acceptEncoding: "gzip;q=1.0, identity;q=0.5", wantGzip: true},
		{name: "gzip not accepted", acceptEncoding: "br"},
		{name: "no accept-encoding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(echo(`{"status":"ok"}`, http.StatusOK)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.wantGzip {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
				assert.Equal(t, `{"status":"ok"}`, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, `{"status":"ok"}`, rr.Body.String())
		})
	}
}

func TestWithGZip_RequestBody(t *testing.T) {
	t.Run("gzipped body is decoded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", gzipBytes(t, []byte(`{"email":"a@b.c"}`)))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		var sawEncoding string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawEncoding = r.Header.Get("Content-Encoding")
			echo("", http.StatusOK).ServeHTTP(w, r)
		})
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, sawEncoding)
		assert.Equal(t, `{"email":"a@b.c"}`, rr.Body.String())
	})

	t.Run("decode and re-encode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", gzipBytes(t, []byte("ping")))
		req.Header.Set("Content-Encoding", "gzip, deflate")
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(echo("got ", http.StatusCreated)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "got ping", gunzip(t, rr.Body))
	})

	t.Run("corrupt body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain text"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		called := false
		withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, called)
	})
}

func TestWithGZip_BodilessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotModified} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/users/1", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})).ServeHTTP(rr, req)

			assert.Equal(t, status, rr.Code)
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Zero(t, rr.Body.Len())
		})
	}
}

func TestWithGZip_ImplicitStatusAndRatio(t *testing.T) {
	payload := strings.Repeat("user-gate ", 2000)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(payload))
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Less(t, rr.Body.Len(), len(payload)/10)
	assert.Equal(t, payload, gunzip(t, rr.Body))
}

func TestWithGZip_PoolReuseConcurrently(t *testing.T) {
	handler := withGZip(echo("pooled", http.StatusOK))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, "pooled", gunzip(t, rr.Body))
		}()
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closed := false
	rc := &wrappedReadCloser{Reader: strings.NewReader("x"), OnClose: func() { closed = true }}
	assert.NoError(t, rc.Close())
	assert.True(t, closed)

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("x")}).Close())
}
