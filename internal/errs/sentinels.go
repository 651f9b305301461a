// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrValidation indicates malformed or missing input (e.g. empty item name).
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateUsername indicates a unique constraint violation on username.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidCredentials indicates a failed login. It is deliberately uniform:
	// callers cannot tell an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("token not provided")

	// ErrInvalidToken indicates token verification failed. Tampered, malformed
	// and expired tokens all collapse into this one error.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound indicates the requested entity does not exist for the caller.
	ErrNotFound = errors.New("not found")
)
