package cryptox

import "errors"

var (
	// ErrUnsupportedKdf is returned for a KDF identifier this build does not know.
	ErrUnsupportedKdf = errors.New("unsupported kdf")

	// ErrIntegrity covers every AEAD failure: wrong key, corrupt or truncated data.
	ErrIntegrity = errors.New("ciphertext integrity check failed")

	// ErrInvalidKeySize is returned for an AES key that is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
)
