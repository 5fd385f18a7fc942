// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-gate HTTP handlers.
//
// All Msg* constants are human-readable strings written into response bodies.
// Keeping them in one place keeps the wording of the API consistent.
package app

const (
	// MsgUserRegistered acknowledges a successful sign-up.
	MsgUserRegistered = "user registered successfully"

	// MsgSignedIn acknowledges a successful sign-in.
	MsgSignedIn = "signed in successfully"

	// MsgSignedOut acknowledges a sign-out. The auth cookie is cleared.
	MsgSignedOut = "signed out successfully"

	// MsgUserUpdated acknowledges a successful profile update.
	MsgUserUpdated = "user updated successfully"

	// MsgValidationFailed is the top-level message of a validation error
	// envelope. Field-level reasons travel in "details".
	MsgValidationFailed = "validation failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
