package vault

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/vaultschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupVault(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, vaultschema.Default.Create(context.Background(), db))
	return db
}

var (
	keyOnce sync.Once
	keyA    *keyvault.KeyPair
	keyB    *keyvault.KeyPair
)

func keys(t *testing.T) (keyvault.KeyPair, keyvault.KeyPair) {
	t.Helper()
	keyOnce.Do(func() {
		var err error
		if keyA, err = keyvault.GenerateKeyPair(); err != nil {
			panic(err)
		}
		if keyB, err = keyvault.GenerateKeyPair(); err != nil {
			panic(err)
		}
	})
	return *keyA, *keyB
}

func TestKeyPairs_InsertPromoteList(t *testing.T) {
	r := NewSQLiteRepository(setupVault(t))
	ctx := context.Background()
	a, b := keys(t)

	require.NoError(t, r.InsertKeyPair(ctx, a))
	require.NoError(t, r.SetPrimaryKeyPair(ctx, a.ID))
	require.NoError(t, r.InsertKeyPair(ctx, b))
	require.NoError(t, r.SetPrimaryKeyPair(ctx, b.ID))

	pairs, err := r.ListKeyPairs(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	primaries := 0
	for _, kp := range pairs {
		if kp.IsPrimary {
			primaries++
			assert.Equal(t, b.ID, kp.ID)
		}
		if kp.ID == a.ID {
			assert.Equal(t, a.PublicKey, kp.PublicKey)
			assert.Equal(t, a.PrivateKey, kp.PrivateKey)
			assert.WithinDuration(t, a.CreatedAt, kp.CreatedAt, time.Millisecond)
		}
	}
	assert.Equal(t, 1, primaries)

	assert.ErrorIs(t, r.SetPrimaryKeyPair(ctx, "missing"), common.ErrorNotFound)
}

func TestKeyPairs_ManagerRotateThroughRepository(t *testing.T) {
	r := NewSQLiteRepository(setupVault(t))
	ctx := context.Background()

	m, err := keyvault.Load(ctx, r)
	require.NoError(t, err)
	first, err := m.EnsurePrimary(ctx, r)
	require.NoError(t, err)
	second, err := m.Rotate(ctx, r)
	require.NoError(t, err)

	reloaded, err := keyvault.Load(ctx, r)
	require.NoError(t, err)
	p, err := reloaded.Primary()
	require.NoError(t, err)
	assert.Equal(t, second.ID, p.ID)
	_, err = reloaded.ByID(first.ID)
	assert.NoError(t, err)
}

func TestCredentials_AddListGetDelete(t *testing.T) {
	r := NewSQLiteRepository(setupVault(t))
	ctx := context.Background()

	c := &models.Credential{
		Service:  models.Service{Name: "GitHub", URL: "https://github.com"},
		Alias:    models.Alias{FirstName: "Ada", Email: "Ada@Example.com"},
		Username: "ada",
		Password: "s3cret",
	}
	require.NoError(t, r.AddCredential(ctx, c))
	require.NotEmpty(t, c.ID)

	require.ErrorIs(t, r.AddCredential(ctx, &models.Credential{}), models.ErrServiceNameRequired)

	list, err := r.ListCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "GitHub", list[0].Service.Name)
	assert.Equal(t, "s3cret", list[0].Password)
	assert.Equal(t, 1970, list[0].Alias.BirthDate.Year())

	got, err := r.GetCredential(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)

	n, err := r.CredentialsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	addrs, err := r.EmailAddresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ada@example.com"}, addrs)

	require.NoError(t, r.DeleteCredential(ctx, c.ID))
	assert.ErrorIs(t, r.DeleteCredential(ctx, c.ID), common.ErrorNotFound)
	_, err = r.GetCredential(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	n, err = r.CredentialsCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCredentials_RollbackInTx(t *testing.T) {
	db := setupVault(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, NewSQLiteRepository(tx).AddCredential(ctx, &models.Credential{Service: models.Service{Name: "x"}}))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	n, err := NewSQLiteRepository(db).CredentialsCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSettings(t *testing.T) {
	r := NewSQLiteRepository(setupVault(t))
	ctx := context.Background()

	_, err := r.GetSetting(ctx, "theme")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, r.SetSetting(ctx, "theme", "dark"))
	require.NoError(t, r.SetSetting(ctx, "theme", "light"))

	v, err := r.GetSetting(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestEmailAddresses_EmptyVault(t *testing.T) {
	r := NewSQLiteRepository(setupVault(t))

	addrs, err := r.EmailAddresses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, addrs)
	assert.NotNil(t, addrs)
}
