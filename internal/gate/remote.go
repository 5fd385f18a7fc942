// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/utils"
)

const (
	decisionAllow = "ALLOW"
	decisionDeny  = "DENY"
)

type decisionRequest struct {
	Request
	Limit         int `json:"limit"`
	WindowSeconds int `json:"window_seconds"`
}

type decisionResponse struct {
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
	Remaining int    `json:"remaining"`
	ResetIn   int    `json:"reset_in"`
}

// remoteGate delegates the decision to an external service. The role budget
// is sent along so the service can apply it.
type remoteGate struct {
	client  *utils.HTTPClient
	url     string
	apiKey  string
	budgets Budgets
}

// NewRemoteGate returns a gate that POSTs every request to url.
func NewRemoteGate(url, apiKey string, timeout time.Duration, budgets Budgets) Gate {
	return &remoteGate{
		client:  utils.NewHTTPClient(timeout),
		url:     url,
		apiKey:  apiKey,
		budgets: budgets,
	}
}

func (g *remoteGate) Evaluate(ctx context.Context, req Request) (Verdict, error) {
	var out decisionResponse

	r := g.client.R().
		SetContext(ctx).
		SetBody(decisionRequest{
			Request:       req,
			Limit:         g.budgets.Limit(req.Role),
			WindowSeconds: int(g.budgets.Window / time.Second),
		}).
		SetResult(&out)
	if g.apiKey != "" {
		r.SetAuthToken(g.apiKey)
	}

	resp, err := r.Post(g.url)
	if err != nil {
		return Verdict{}, fmt.Errorf("%w: %w", ErrRemoteDecision, err)
	}
	if resp.IsError() {
		return Verdict{}, fmt.Errorf("%w: unexpected status %d", ErrRemoteDecision, resp.StatusCode())
	}

	reset := time.Duration(out.ResetIn) * time.Second

	switch strings.ToUpper(out.Decision) {
	case decisionAllow:
		return allow(out.Remaining, reset), nil
	case decisionDeny:
		return deny(parseReason(out.Reason), reset), nil
	default:
		return Verdict{}, fmt.Errorf("%w: unknown decision %q", ErrRemoteDecision, out.Decision)
	}
}

// parseReason maps the service's reason string onto a [Reason]. Anything
// unrecognised is reported as a shield denial.
func parseReason(reason string) Reason {
	switch strings.ToUpper(reason) {
	case "BOT", "BOT_DETECTED":
		return ReasonBotDetected
	case "RATE_LIMIT", "RATE_LIMITED":
		return ReasonRateLimited
	default:
		return ReasonShield
	}
}
