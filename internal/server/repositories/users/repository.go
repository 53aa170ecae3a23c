package users

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID. A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// UpdateCredentials replaces the SRP salt/verifier and KDF description.
	UpdateCredentials(ctx context.Context, user *models.User) error
	SetTwoFactor(ctx context.Context, userID string, enabled bool, totpSecret string) error
	// LockForUpdate row-locks the user until the surrounding transaction ends.
	LockForUpdate(ctx context.Context, id string) error
}
