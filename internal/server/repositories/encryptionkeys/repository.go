// Package encryptionkeys stores the public halves of users' vault key pairs.
package encryptionkeys

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	Primary(ctx context.Context, userID string) (*models.UserEncryptionKey, error)
	List(ctx context.Context, userID string) ([]*models.UserEncryptionKey, error)
	// Upsert inserts the key or refreshes its public JWK if the id exists.
	Upsert(ctx context.Context, k *models.UserEncryptionKey) error
	// SetPrimary demotes the current primary and promotes keyID. Callers run
	// it inside a transaction.
	SetPrimary(ctx context.Context, userID, keyID string) error
}
