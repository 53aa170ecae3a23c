package emails

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

// PostgresRepository stores emails and email_attachments. Bodies and
// attachment blobs arrive already encrypted; only the storage key of an
// attachment is kept here.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a repository over db.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const emailColumns = `id, user_id, encryption_key_id, encrypted_symmetric_key, from_address, to_address,
		subject, message_html, message_plain, message_preview, headers, date_received, is_deleted`

const attachmentColumns = `id, email_id, filename, mime_type, filesize, storage_key`

type scanner interface{ Scan(...any) error }

func scanEmail(row scanner) (*models.Email, error) {
	e := &models.Email{}
	err := row.Scan(&e.ID, &e.UserID, &e.EncryptionKeyID, &e.EncryptedSymmetricKey, &e.From, &e.To,
		&e.Subject, &e.MessageHTML, &e.MessagePlain, &e.MessagePreview, &e.Headers, &e.DateReceived, &e.IsDeleted)
	return e, err
}

func scanAttachment(row scanner) (*models.EmailAttachment, error) {
	a := &models.EmailAttachment{}
	err := row.Scan(&a.ID, &a.EmailID, &a.Filename, &a.MimeType, &a.Filesize, &a.StorageKey)
	return a, err
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Email) (*models.Email, error) {
	query := `
		INSERT INTO emails (id, user_id, encryption_key_id, encrypted_symmetric_key, from_address,
			to_address, subject, message_html, message_plain, message_preview, headers, date_received)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.UserID, e.EncryptionKeyID, e.EncryptedSymmetricKey,
		e.From, e.To, e.Subject, e.MessageHTML, e.MessagePlain, e.MessagePreview, e.Headers, e.DateReceived)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) CreateAttachment(ctx context.Context, a *models.EmailAttachment) (*models.EmailAttachment, error) {
	query := `
		INSERT INTO email_attachments (id, email_id, filename, mime_type, filesize, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.EmailID, a.Filename, a.MimeType, a.Filesize, a.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// ListForUser returns live emails, newest first.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE user_id = $1 AND NOT is_deleted ORDER BY date_received DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Email
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Get hides soft-deleted emails and those of other users behind
// common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE id = $1 AND user_id = $2 AND NOT is_deleted`
	e, err := scanEmail(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Attachments(ctx context.Context, emailID string) ([]*models.EmailAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM email_attachments WHERE email_id = $1 ORDER BY filename`
	rows, err := r.db.QueryContext(ctx, query, emailID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.EmailAttachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetAttachment(ctx context.Context, emailID, id string) (*models.EmailAttachment, error) {
	query := `SELECT ` + attachmentColumns + ` FROM email_attachments WHERE id = $1 AND email_id = $2`
	a, err := scanAttachment(r.db.QueryRowContext(ctx, query, id, emailID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

// SoftDelete flags the email; deleting twice yields common.ErrorNotFound.
func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE emails SET is_deleted = TRUE WHERE id = $1 AND user_id = $2 AND NOT is_deleted`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
