//go:build integration

package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/aliaskeeper/internal/srp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pg "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	ctx := context.Background()

	container, err := pg.Run(ctx, "postgres:16-alpine",
		pg.WithDatabase("aliaskeeper"),
		pg.WithUsername("test"),
		pg.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rm, err := repomanager.NewPostgresRepositoryManager(db)
	require.NoError(t, err)
	require.NoError(t, rm.RunMigrations(ctx, db))
	return db, rm
}

func pgProve(t *testing.T, us *UserService, user, password string) ValidateRequest {
	t.Helper()
	ch, err := us.LoginInit(context.Background(), user)
	require.NoError(t, err)
	mk, err := cryptox.DeriveMasterKey([]byte(password), []byte(ch.Salt), ch.EncryptionType, ch.EncryptionSettings)
	require.NoError(t, err)
	x, err := srp.Default.DerivePrivateKey(ch.Salt, user, hex.EncodeToString(mk))
	require.NoError(t, err)
	eph := srp.Default.GenerateClientEphemeral()
	sess, err := srp.Default.DeriveClientSession(eph.Secret, ch.ServerEphemeral, ch.Salt, user, x)
	require.NoError(t, err)
	return ValidateRequest{UserName: user, ClientPublicEphemeral: eph.Public, ClientSessionProof: sess.Proof}
}

func TestPostgres_EndToEnd(t *testing.T) {
	db, rm := startPostgres(t)
	ctx := context.Background()
	cfg := testConfig()

	us := NewUserService(db, rm, cfg, logging.Nop{})
	t.Cleanup(us.Close)
	vs := NewVaultService(db, rm, cfg, logging.Nop{})
	blobs := blobstore.NewMemory()
	es := NewEmailService(db, rm, blobs, logging.Nop{})

	const user, password = "test@test.com", "password"
	salt := srp.GenerateSalt()
	mk, err := cryptox.DeriveMasterKey([]byte(password), []byte(salt), cryptox.KdfPbkdf2Sha256, pbkdfSettings)
	require.NoError(t, err)
	x, err := srp.Default.DerivePrivateKey(salt, user, hex.EncodeToString(mk))
	require.NoError(t, err)
	v, err := srp.Default.DeriveVerifier(x)
	require.NoError(t, err)
	u, err := us.Register(ctx, RegisterRequest{UserName: user, Salt: salt, Verifier: v, EncryptionType: cryptox.KdfPbkdf2Sha256, EncryptionSettings: pbkdfSettings})
	require.NoError(t, err)

	res, err := us.Validate(ctx, pgProve(t, us, user, password))
	require.NoError(t, err)
	require.NotNil(t, res.Token)
	id, err := us.UserIDFromAccessToken(res.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	kp, err := keyvault.GenerateKeyPair()
	require.NoError(t, err)
	doc, err := json.Marshal(kp.PublicKey)
	require.NoError(t, err)

	saved, err := vs.SaveVault(ctx, u.ID, SaveVaultRequest{
		Blob: "blob", Version: "1.0",
		EncryptionPublicKey: &PublicKeyUpload{ID: kp.ID, PublicKey: string(doc)},
		EmailAddressList:    []string{"shop@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.NewRevisionNumber)

	_, err = vs.SaveVault(ctx, u.ID, SaveVaultRequest{Blob: "stale", Version: "1.0"})
	assert.ErrorIs(t, err, common.ErrRevisionConflict)

	emailID, err := es.Ingest(ctx, envelope.InboundEmail{
		From: "a@store.example", To: "SHOP@example.com", Subject: "Receipt ✓",
		DateReceived: time.Now().UTC(),
		Attachments:  []envelope.Attachment{{Filename: "r.txt", MimeType: "text/plain", Content: []byte("42")}},
	})
	require.NoError(t, err)

	list, err := es.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, emailID, list[0].ID)
	msg, err := envelope.Decrypt(keyvault.NewManager([]keyvault.KeyPair{*kp}), list[0])
	require.NoError(t, err)
	assert.Equal(t, "Receipt ✓", msg.Subject)
	assert.Equal(t, 1, blobs.Len())
}

func TestPostgres_Lockout(t *testing.T) {
	db, rm := startPostgres(t)
	ctx := context.Background()
	us := NewUserService(db, rm, testConfig(), logging.Nop{})
	t.Cleanup(us.Close)

	salt := srp.GenerateSalt()
	mk, err := cryptox.DeriveMasterKey([]byte("password"), []byte(salt), cryptox.KdfPbkdf2Sha256, pbkdfSettings)
	require.NoError(t, err)
	x, err := srp.Default.DerivePrivateKey(salt, "u@test.com", hex.EncodeToString(mk))
	require.NoError(t, err)
	v, err := srp.Default.DeriveVerifier(x)
	require.NoError(t, err)
	_, err = us.Register(ctx, RegisterRequest{UserName: "u@test.com", Salt: salt, Verifier: v, EncryptionType: cryptox.KdfPbkdf2Sha256, EncryptionSettings: pbkdfSettings})
	require.NoError(t, err)

	for i := 0; i < common.DefaultLockoutThreshold; i++ {
		_, err := us.Validate(ctx, pgProve(t, us, "u@test.com", "wrong"))
		require.ErrorIs(t, err, common.ErrAuthenticationFailed, "attempt %d", i+1)
	}
	_, err = us.Validate(ctx, pgProve(t, us, "u@test.com", "password"))
	var locked *common.LockedOutError
	require.ErrorAs(t, err, &locked)
	assert.Greater(t, locked.Remaining, 29*time.Minute)
}
