// Package authattempts stores per-credential-class failure counters used
// for login lockout.
package authattempts

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	// GetForUpdate returns the counter row, creating it if needed, and locks
	// it until the surrounding transaction ends. It must run inside a
	// transaction so parallel login attempts are serialized.
	GetForUpdate(ctx context.Context, userID string, class models.CredentialClass) (*models.AuthAttempt, error)
	Save(ctx context.Context, a *models.AuthAttempt) error
}
