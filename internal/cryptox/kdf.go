package cryptox

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// KDF identifiers stored with every account and vault.
const (
	KdfArgon2id     = "Argon2Id"
	KdfPbkdf2Sha256 = "Pbkdf2Sha256"
)

// Argon2Settings is the JSON parameter document of the Argon2Id KDF.
// MemorySize is expressed in KiB.
type Argon2Settings struct {
	DegreeOfParallelism uint8  `json:"DegreeOfParallelism"`
	MemorySize          uint32 `json:"MemorySize"`
	Iterations          uint32 `json:"Iterations"`
}

// Pbkdf2Settings is the JSON parameter document of the legacy PBKDF2 KDF.
type Pbkdf2Settings struct {
	Iterations int `json:"Iterations"`
}

// DefaultArgon2Settings are the parameters new accounts are created with.
var DefaultArgon2Settings = Argon2Settings{
	DegreeOfParallelism: 4,
	MemorySize:          64 * 1024,
	Iterations:          1,
}

// DefaultKdf returns the identifier and settings JSON for new accounts.
// Existing accounts keep whatever pair they were created with.
func DefaultKdf() (encryptionType string, settings string) {
	b, _ := json.Marshal(DefaultArgon2Settings)
	return KdfArgon2id, string(b)
}

// DeriveMasterKey derives the 32-byte Master Key from the password, salt
// and the versioned KDF description carried by the account.
//
// The function is pure: identical inputs always produce the identical key.
// An unknown encryptionType yields ErrUnsupportedKdf.
func DeriveMasterKey(password, salt []byte, encryptionType, settings string) ([]byte, error) {
	derive, err := parseKdf(encryptionType, settings)
	if err != nil {
		return nil, err
	}
	return derive(password, salt), nil
}

// ValidateKdf checks an identifier and settings pair without deriving.
func ValidateKdf(encryptionType, settings string) error {
	_, err := parseKdf(encryptionType, settings)
	return err
}

func parseKdf(encryptionType, settings string) (func(password, salt []byte) []byte, error) {
	switch encryptionType {
	case KdfArgon2id:
		var s Argon2Settings
		if err := json.Unmarshal([]byte(settings), &s); err != nil {
			return nil, fmt.Errorf("argon2id settings: %w", err)
		}
		if s.Iterations == 0 || s.MemorySize == 0 || s.DegreeOfParallelism == 0 {
			return nil, fmt.Errorf("argon2id settings: zero parameter in %q", settings)
		}
		return func(password, salt []byte) []byte {
			return argon2.IDKey(password, salt, s.Iterations, s.MemorySize, s.DegreeOfParallelism, KeySize)
		}, nil

	case KdfPbkdf2Sha256:
		var s Pbkdf2Settings
		if err := json.Unmarshal([]byte(settings), &s); err != nil {
			return nil, fmt.Errorf("pbkdf2 settings: %w", err)
		}
		if s.Iterations <= 0 {
			return nil, fmt.Errorf("pbkdf2 settings: iterations must be positive")
		}
		return func(password, salt []byte) []byte {
			return pbkdf2.Key(password, salt, s.Iterations, KeySize, sha256.New)
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKdf, encryptionType)
	}
}
