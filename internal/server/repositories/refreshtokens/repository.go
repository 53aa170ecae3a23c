// Package refreshtokens stores the server side of login sessions.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens. Callers pass the
// opaque token handed to the client; implementations persist only its hash.
type Repository interface {
	// Create stores token for userID, valid for validity from now. Expired
	// tokens of the same user are purged in the same call.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Consume deletes token and returns the removed row. Of several callers
	// racing on the same token only one gets it; the rest see
	// common.ErrorNotFound.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	// DeleteAllForUser ends every session of a user and reports how many
	// tokens were removed.
	DeleteAllForUser(ctx context.Context, userID string) (int64, error)
}
