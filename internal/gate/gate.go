// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gate

//go:generate mockgen -source=gate.go -destination=../mock/gate_mock.go -package=mock

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-gate/internal/config"
	"github.com/MKhiriev/go-user-gate/models"
)

// Reason explains why a request was denied.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonBotDetected Reason = "BOT_DETECTED"
	ReasonRateLimited Reason = "RATE_LIMITED"
	ReasonShield      Reason = "SHIELD"
)

var (
	ErrUnknownMode    = errors.New("unknown gate mode")
	ErrNilRedisClient = errors.New("redis gate requires a redis client")
	ErrRemoteDecision = errors.New("remote gate decision failed")
	ErrCounterStore   = errors.New("rate counter store failed")
)

// Request is what the gate knows about an inbound call.
type Request struct {
	Role models.Role `json:"role"`

	// Fingerprint identifies the caller for budgeting purposes. It is an
	// opaque digest; raw IPs are never used as keys.
	Fingerprint string `json:"fingerprint"`

	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Method    string `json:"method"`
	Path      string `json:"path"`
}

// Verdict is the outcome of [Gate.Evaluate].
type Verdict struct {
	Allowed bool
	Reason  Reason

	// Remaining is the number of requests left in the current budget.
	Remaining int

	// Reset is the time until the budget allows the next request.
	Reset time.Duration
}

// Gate evaluates inbound requests. An error means no decision could be made;
// callers decide how to degrade.
type Gate interface {
	Evaluate(ctx context.Context, req Request) (Verdict, error)
}

func allow(remaining int, reset time.Duration) Verdict {
	return Verdict{Allowed: true, Remaining: remaining, Reset: reset}
}

func deny(reason Reason, reset time.Duration) Verdict {
	return Verdict{Allowed: false, Reason: reason, Reset: reset}
}

// Budgets maps roles to a number of requests per Window.
type Budgets struct {
	Admin  int
	User   int
	Guest  int
	Window time.Duration
}

// BudgetsFromConfig copies the configured per-role limits.
func BudgetsFromConfig(cfg config.RateLimit) Budgets {
	return Budgets{
		Admin:  cfg.Admin,
		User:   cfg.User,
		Guest:  cfg.Guest,
		Window: cfg.Window,
	}
}

// Limit returns the budget of role. Unknown roles get the guest budget.
func (b Budgets) Limit(role models.Role) int {
	switch role {
	case models.RoleAdmin:
		return b.Admin
	case models.RoleUser:
		return b.User
	default:
		return b.Guest
	}
}

// openGate allows everything. Used in "off" mode.
type openGate struct{}

// NewOpenGate returns a gate that never denies.
func NewOpenGate() Gate {
	return openGate{}
}

func (openGate) Evaluate(context.Context, Request) (Verdict, error) {
	return allow(0, 0), nil
}
