package vaults

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// PostgresRepository appends vault revisions to the vaults table; rows are
// never updated in place.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a repository over db.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Latest returns the highest revision, or common.ErrorNotFound for a user
// who never saved.
func (r *PostgresRepository) Latest(ctx context.Context, userID string) (*models.Vault, error) {
	query := `
		SELECT id, user_id, revision_number, vault_blob, version, encryption_type,
			encryption_settings, salt, verifier, credentials_count, created_at
		FROM vaults
		WHERE user_id = $1
		ORDER BY revision_number DESC
		LIMIT 1
	`
	v := &models.Vault{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&v.ID, &v.UserID, &v.RevisionNumber,
		&v.VaultBlob, &v.Version, &v.EncryptionType, &v.EncryptionSettings, &v.Salt,
		&v.Verifier, &v.CredentialsCount, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

// LatestRevisionForUpdate locks the users row, which serializes saves and
// password changes of that user, and returns the current revision number
// (0 when there is none).
func (r *PostgresRepository) LatestRevisionForUpdate(ctx context.Context, userID string) (int64, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	var rev int64
	err = r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(revision_number), 0) FROM vaults WHERE user_id = $1`, userID).Scan(&rev)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rev, nil
}

// Create inserts revision v. A duplicate revision number yields
// common.ErrRevisionConflict.
func (r *PostgresRepository) Create(ctx context.Context, v *models.Vault) (*models.Vault, error) {
	query := `
		INSERT INTO vaults (user_id, revision_number, vault_blob, version, encryption_type,
			encryption_settings, salt, verifier, credentials_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, v.UserID, v.RevisionNumber, v.VaultBlob, v.Version,
		v.EncryptionType, v.EncryptionSettings, v.Salt, v.Verifier, v.CredentialsCount,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrRevisionConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}
