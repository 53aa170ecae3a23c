// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"time"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// ErrAuthenticationFailed is the only failure a caller of the login flow
	// ever sees for a bad proof, code or recovery code.
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrAccountLockedOut     = errors.New("account locked out")
	ErrTwoFactorRequired    = errors.New("two factor authentication required")
	ErrLoginSessionExpired  = errors.New("login session expired")

	// ErrRevisionConflict is returned when a vault upload was based on a
	// revision that is no longer the latest one.
	ErrRevisionConflict = errors.New("vault revision conflict")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// LockedOutError reports a locked credential class together with the time
// left until the lock is lifted. It matches ErrAccountLockedOut.
type LockedOutError struct {
	Remaining time.Duration
}

func (e *LockedOutError) Error() string {
	minutes := int(e.Remaining.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("account locked out, try again in %d minute(s)", minutes)
}

func (e *LockedOutError) Is(target error) bool {
	return target == ErrAccountLockedOut
}
