package models

import "time"

// Vault is one stored revision of a user's encrypted vault.
type Vault struct {
	ID                 string
	UserID             string
	RevisionNumber     int64
	VaultBlob          string
	Version            string
	EncryptionType     string
	EncryptionSettings string
	Salt               string
	Verifier           string
	CredentialsCount   int
	CreatedAt          time.Time
}

// UserEncryptionKey is the public half of a vault key pair. PublicKey holds
// the JWK document as uploaded by the client.
type UserEncryptionKey struct {
	ID        string
	UserID    string
	PublicKey string
	IsPrimary bool
	CreatedAt time.Time
}
