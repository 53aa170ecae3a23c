package models

import "time"

// EmailClaim binds an alias address to the user who receives its mail.
type EmailClaim struct {
	Address   string
	UserID    string
	CreatedAt time.Time
}

// Email is a received message. All content columns hold base64 AES-GCM
// ciphertext sealed under a per-message key, which is itself wrapped in
// EncryptedSymmetricKey for the key pair EncryptionKeyID.
type Email struct {
	ID                    string
	UserID                string
	EncryptionKeyID       string
	EncryptedSymmetricKey string
	From                  string
	To                    string
	Subject               string
	MessageHTML           string
	MessagePlain          string
	MessagePreview        string
	Headers               string
	DateReceived          time.Time
	IsDeleted             bool
}

// EmailAttachment is attachment metadata; the ciphertext lives in object
// storage under StorageKey.
type EmailAttachment struct {
	ID         string
	EmailID    string
	Filename   string
	MimeType   string
	Filesize   int64
	StorageKey string
}
