// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"
)

const authCookieName = "token"

// setAuthCookie stores token in an HttpOnly, SameSite=Strict cookie that
// lives as long as the token. Secure is set in production only, so the
// cookie also works over plain HTTP during development.
func (h *Handler) setAuthCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, h.authCookie(token, int(ttl/time.Second)))
}

// clearAuthCookie expires the auth cookie immediately.
func (h *Handler) clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.authCookie("", -1))
}

func (h *Handler) authCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     authCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	}
}

func readAuthCookie(r *http.Request) (string, bool) {
	c, err := r.Cookie(authCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
