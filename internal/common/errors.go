// Package common defines shared constants and sentinel errors used across
// client and server layers of the grocery list service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors (caller must fix input, no retry without change).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials is deliberately generic: it never
	// reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
