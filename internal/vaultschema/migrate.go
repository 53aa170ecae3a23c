package vaultschema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
)

// DB is a handle migrations can run on: *sql.DB or *sql.Conn.
type DB interface {
	dbx.DBTX
	dbx.Beginner
}

// CurrentRevision reads PRAGMA user_version.
func CurrentRevision(ctx context.Context, q dbx.DBTX) (int, error) {
	var v int
	if err := q.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return v, nil
}

func setRevision(ctx context.Context, q dbx.DBTX, revision int) error {
	// PRAGMA does not accept bound parameters; revision is an int.
	_, err := q.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, revision))
	return err
}

func tableNames(ctx context.Context, q dbx.DBTX) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Validate checks that the database holds exactly the tables expected at
// revision. Any difference is ErrSchemaValidation.
func (e *Engine) Validate(ctx context.Context, q dbx.DBTX, revision int) error {
	expected, err := e.ExpectedTables(revision)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	actual, err := tableNames(ctx, q)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	want := make(map[string]bool, len(expected))
	for _, t := range expected {
		want[t] = true
	}
	var missing, extra []string
	for _, t := range actual {
		if !want[t] {
			extra = append(extra, t)
		}
		delete(want, t)
	}
	for t := range want {
		missing = append(missing, t)
	}
	sort.Strings(missing)

	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("%w: revision %d, missing [%s], unexpected [%s]",
			ErrSchemaValidation, revision, strings.Join(missing, ","), strings.Join(extra, ","))
	}
	return nil
}

// Migrate brings the database from its stored revision up to target
// (Latest when target <= 0). The stored schema is validated first and
// every step runs in a single transaction, so a failure leaves the vault
// at its previous revision. It returns the revision the database was at.
func (e *Engine) Migrate(ctx context.Context, db DB, target int) (from int, err error) {
	if target <= 0 {
		target = e.Latest()
	}

	from, err = CurrentRevision(ctx, db)
	if err != nil {
		return 0, err
	}
	if from > e.Latest() {
		return from, fmt.Errorf("%w: revision %d is newer than this client (%d)", ErrSchemaValidation, from, e.Latest())
	}
	if err := e.Validate(ctx, db, from); err != nil {
		return from, err
	}

	scripts, err := e.UpgradeVaultSQL(from, target)
	if err != nil {
		return from, err
	}
	if len(scripts) == 0 {
		return from, nil
	}

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, s := range scripts {
			for _, stmt := range statements(s.SQL) {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("migration %d (%s): %w", s.Revision, s.Version, err)
				}
			}
		}
		if err := e.Validate(ctx, tx, target); err != nil {
			return err
		}
		return setRevision(ctx, tx, target)
	})
	return from, err
}

// Create applies the complete schema to an empty database and stamps it
// with the latest revision.
func (e *Engine) Create(ctx context.Context, db DB) error {
	if err := e.Validate(ctx, db, 0); err != nil {
		return fmt.Errorf("create vault on non-empty database: %w", err)
	}
	script := e.CreateVaultSQL()

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, stmt := range statements(script.SQL) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create vault schema: %w", err)
			}
		}
		return setRevision(ctx, tx, script.Revision)
	})
}
