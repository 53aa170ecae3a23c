package authattempts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

// PostgresRepository keeps one auth_attempts row per user and credential class.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds the repository to db. GetForUpdate only locks
// when db is a transaction.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetForUpdate creates the counter row on first use and returns it locked
// until the surrounding transaction ends.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, userID string, class models.CredentialClass) (*models.AuthAttempt, error) {
	insert := `
		INSERT INTO auth_attempts (user_id, credential_class)
		VALUES ($1, $2)
		ON CONFLICT (user_id, credential_class) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, userID, string(class)); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query := `
		SELECT failed_count, locked_until, updated_at
		FROM auth_attempts
		WHERE user_id = $1 AND credential_class = $2
		FOR UPDATE
	`
	a := &models.AuthAttempt{UserID: userID, Class: class}
	var lockedUntil sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, userID, string(class)).Scan(&a.FailedCount, &lockedUntil, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if lockedUntil.Valid {
		a.LockedUntil = lockedUntil.Time
	}
	return a, nil
}

// Save writes the counter back and stamps updated_at. A zero LockedUntil is
// stored as NULL.
func (r *PostgresRepository) Save(ctx context.Context, a *models.AuthAttempt) error {
	query := `
		UPDATE auth_attempts
		SET failed_count = $3, locked_until = $4, updated_at = now()
		WHERE user_id = $1 AND credential_class = $2
	`
	lockedUntil := sql.NullTime{Time: a.LockedUntil, Valid: !a.LockedUntil.IsZero()}
	if _, err := r.db.ExecContext(ctx, query, a.UserID, string(a.Class), a.FailedCount, lockedUntil); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
