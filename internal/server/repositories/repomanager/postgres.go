// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/migrations"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/authattempts"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emailclaims"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emails"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/encryptionkeys"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/recoverycodes"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/vaults"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) AuthAttempts(db dbx.DBTX) authattempts.Repository {
	return authattempts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RecoveryCodes(db dbx.DBTX) recoverycodes.Repository {
	return recoverycodes.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Vaults(db dbx.DBTX) vaults.Repository {
	return vaults.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) EncryptionKeys(db dbx.DBTX) encryptionkeys.Repository {
	return encryptionkeys.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) EmailClaims(db dbx.DBTX) emailclaims.Repository {
	return emailclaims.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Emails(db dbx.DBTX) emails.Repository {
	return emails.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded server migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
