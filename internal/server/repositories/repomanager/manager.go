package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/authattempts"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emailclaims"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emails"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/encryptionkeys"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/recoverycodes"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/vaults"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can compose several of them under dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	AuthAttempts(db dbx.DBTX) authattempts.Repository
	RecoveryCodes(db dbx.DBTX) recoverycodes.Repository
	Vaults(db dbx.DBTX) vaults.Repository
	EncryptionKeys(db dbx.DBTX) encryptionkeys.Repository
	EmailClaims(db dbx.DBTX) emailclaims.Repository
	Emails(db dbx.DBTX) emails.Repository
}
