package cryptox

import (
	"encoding/base64"
)

// EncryptVault seals the serialized vault database with the Master Key and
// returns the wire form base64(nonce || ciphertext || tag).
func EncryptVault(plain, masterKey []byte) (string, error) {
	sealed, err := Seal(plain, masterKey)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptVault opens a blob produced by EncryptVault.
//
// Malformed base64, a truncated blob, a wrong key and a tampered tag all
// return ErrIntegrity: callers report them uniformly as "cannot unlock".
func DecryptVault(blob string, masterKey []byte) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, ErrIntegrity
	}
	return Open(sealed, masterKey)
}
