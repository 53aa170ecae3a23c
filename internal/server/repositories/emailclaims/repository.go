// Package emailclaims maps alias addresses to the users that own them.
package emailclaims

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	// Sync makes addresses the user's claim set. Addresses already claimed
	// by another user are skipped and returned.
	Sync(ctx context.Context, userID string, addresses []string) (skipped []string, err error)
	FindByAddress(ctx context.Context, address string) (*models.EmailClaim, error)
	ListForUser(ctx context.Context, userID string) ([]*models.EmailClaim, error)
}
