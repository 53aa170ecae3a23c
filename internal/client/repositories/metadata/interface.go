// Package metadata persists the CLI's local cache as key/value rows.
package metadata

import (
	"context"
)

// Keys of the cached login parameters and the last pulled vault.
const (
	KeyUsername           = "username"
	KeySalt               = "salt"
	KeyEncryptionType     = "encryption_type"
	KeyEncryptionSettings = "encryption_settings"
	KeyVault              = "vault"
	KeyVaultVersion       = "vault_version"
	KeyVaultRevision      = "vault_revision"
)

type Repository interface {
	// Get returns common.ErrorNotFound for a missing key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
