// Package vaults stores the revision history of users' encrypted vaults.
package vaults

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	// Latest returns the highest revision, or common.ErrorNotFound.
	Latest(ctx context.Context, userID string) (*models.Vault, error)
	// LatestRevisionForUpdate locks the owning user row and returns the
	// current revision number, 0 when no vault exists yet.
	LatestRevisionForUpdate(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, v *models.Vault) (*models.Vault, error)
}
