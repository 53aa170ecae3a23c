package emailclaims

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Normalize lower-cases and trims an address the same way for claims and
// for inbound routing.
func Normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func (r *PostgresRepository) Sync(ctx context.Context, userID string, addresses []string) ([]string, error) {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM email_claims WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query := `
		INSERT INTO email_claims (address, user_id)
		VALUES ($1, $2)
		ON CONFLICT (address) DO NOTHING
	`
	var skipped []string
	seen := make(map[string]struct{}, len(addresses))
	for _, a := range addresses {
		a = Normalize(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}

		res, err := r.db.ExecContext(ctx, query, a, userID)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if n == 0 {
			skipped = append(skipped, a)
		}
	}
	return skipped, nil
}

func (r *PostgresRepository) FindByAddress(ctx context.Context, address string) (*models.EmailClaim, error) {
	c := &models.EmailClaim{}
	err := r.db.QueryRowContext(ctx,
		`SELECT address, user_id, created_at FROM email_claims WHERE address = $1`, Normalize(address),
	).Scan(&c.Address, &c.UserID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]*models.EmailClaim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT address, user_id, created_at FROM email_claims WHERE user_id = $1 ORDER BY address`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.EmailClaim
	for rows.Next() {
		c := &models.EmailClaim{}
		if err := rows.Scan(&c.Address, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
