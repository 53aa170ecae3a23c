package encryptionkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

// PostgresRepository keeps public keys in user_encryption_keys. At most one
// key per user has is_primary set.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a repository over db. SetPrimary issues two
// statements and should run inside a transaction.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const keyColumns = `id, user_id, public_key, is_primary, created_at`

func scanKey(row interface{ Scan(...any) error }) (*models.UserEncryptionKey, error) {
	k := &models.UserEncryptionKey{}
	if err := row.Scan(&k.ID, &k.UserID, &k.PublicKey, &k.IsPrimary, &k.CreatedAt); err != nil {
		return nil, err
	}
	return k, nil
}

// Primary returns the key new mail is encrypted to.
func (r *PostgresRepository) Primary(ctx context.Context, userID string) (*models.UserEncryptionKey, error) {
	query := `SELECT ` + keyColumns + ` FROM user_encryption_keys WHERE user_id = $1 AND is_primary`
	k, err := scanKey(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return k, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.UserEncryptionKey, error) {
	query := `SELECT ` + keyColumns + ` FROM user_encryption_keys WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.UserEncryptionKey
	for rows.Next() {
		k, err := scanKey(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Upsert inserts a non-primary key or refreshes the public key of an existing
// one. A key id owned by another user is left untouched.
func (r *PostgresRepository) Upsert(ctx context.Context, k *models.UserEncryptionKey) error {
	query := `
		INSERT INTO user_encryption_keys (id, user_id, public_key, is_primary)
		VALUES ($1, $2, $3, FALSE)
		ON CONFLICT (id) DO UPDATE SET public_key = EXCLUDED.public_key
		WHERE user_encryption_keys.user_id = EXCLUDED.user_id
	`
	if _, err := r.db.ExecContext(ctx, query, k.ID, k.UserID, k.PublicKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// SetPrimary moves the primary flag to keyID and returns common.ErrorNotFound
// when the user has no such key.
func (r *PostgresRepository) SetPrimary(ctx context.Context, userID, keyID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE user_encryption_keys SET is_primary = FALSE WHERE user_id = $1 AND is_primary AND id <> $2`,
		userID, keyID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE user_encryption_keys SET is_primary = TRUE WHERE user_id = $1 AND id = $2`,
		userID, keyID)
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
