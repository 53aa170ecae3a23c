// Package emails stores received, envelope-encrypted messages and their
// attachment metadata.
package emails

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Email) (*models.Email, error)
	CreateAttachment(ctx context.Context, a *models.EmailAttachment) (*models.EmailAttachment, error)
	// ListForUser returns non-deleted emails, newest first.
	ListForUser(ctx context.Context, userID string) ([]*models.Email, error)
	Get(ctx context.Context, userID, id string) (*models.Email, error)
	Attachments(ctx context.Context, emailID string) ([]*models.EmailAttachment, error)
	GetAttachment(ctx context.Context, emailID, id string) (*models.EmailAttachment, error)
	SoftDelete(ctx context.Context, userID, id string) error
}
