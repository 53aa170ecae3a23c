package models

import "time"

// RefreshToken is a server-side login session. Only the SHA-256 hash of the
// opaque token is stored.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	Expires   time.Time
	CreatedAt time.Time
}
