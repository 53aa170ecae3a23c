// Package vault reads and writes the tables of the decrypted vault
// database. The handle is whatever the session holds open: the in-memory
// connection or a transaction on it.
package vault

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
)

type Repository interface {
	keyvault.Store

	AddCredential(ctx context.Context, c *models.Credential) error
	ListCredentials(ctx context.Context) ([]models.Credential, error)
	GetCredential(ctx context.Context, id string) (*models.Credential, error)
	DeleteCredential(ctx context.Context, id string) error
	CredentialsCount(ctx context.Context) (int, error)

	// EmailAddresses lists the distinct alias addresses the server should
	// accept mail for.
	EmailAddresses(ctx context.Context) ([]string, error)

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
