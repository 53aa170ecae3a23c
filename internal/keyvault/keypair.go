package keyvault

import (
	"crypto/rand"
	"crypto/rsa"
	"time"

	"github.com/google/uuid"
)

// RSABits is the modulus size of every generated key pair.
const RSABits = 2048

// KeyPair is one RSA key pair stored in the vault EncryptionKeys table.
type KeyPair struct {
	ID         string
	PublicKey  PublicJWK
	PrivateKey PrivateJWK
	IsPrimary  bool
	CreatedAt  time.Time
}

// GenerateKeyPair creates a new non-primary RSA-2048 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, RSABits)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		ID:         uuid.NewString(),
		PublicKey:  PublicFromRSA(&priv.PublicKey),
		PrivateKey: PrivateFromRSA(priv),
		CreatedAt:  time.Now().UTC(),
	}, nil
}
