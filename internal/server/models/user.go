// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account. Salt and Verifier are the SRP registration values
// (hex); the server never sees the password or the Master Key.
type User struct {
	ID                 string
	UserName           string
	Salt               string
	Verifier           string
	EncryptionType     string
	EncryptionSettings string
	TwoFactorEnabled   bool
	TotpSecret         string
	CreatedAt          time.Time
}
