package models

import "time"

// CredentialClass separates lockout counters: a stream of bad TOTP codes
// must not lock out password logins and vice versa.
type CredentialClass string

const (
	CredentialPassword CredentialClass = "password"
	CredentialTotp     CredentialClass = "totp"
	CredentialRecovery CredentialClass = "recovery"
)

// AuthAttempt is the failure counter of one credential class of one user.
// LockedUntil is zero when the account is not locked.
type AuthAttempt struct {
	UserID      string
	Class       CredentialClass
	FailedCount int
	LockedUntil time.Time
	UpdatedAt   time.Time
}
