// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON HTTP client with the given per-request timeout.
// Automatic retries are disabled: a failed call is reported to the caller
// immediately. A zero timeout leaves resty's default (none).
//
// Example usage:
//
//	client := utils.NewHTTPClient(2 * time.Second)
//	resp, err := client.R().SetBody(req).Post("https://gate.example.com/decide")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
