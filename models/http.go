// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the JSON body of POST /api/auth/sign-up.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72,bcryptlen"`

	// Role is optional; an empty value means [RoleUser].
	Role Role `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// SignInRequest is the JSON body of POST /api/auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
