package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/blobstore"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emailFixture struct {
	svc   *EmailService
	rm    *fakeRepoManager
	mock  sqlmock.Sqlmock
	blobs *blobstore.Memory
	keys  *keyvault.Manager
}

func newEmailFixture(t *testing.T) *emailFixture {
	t.Helper()
	db, mock := newSQLMockDB(t)
	rm := newFakeRepoManager(time.Now)
	blobs := blobstore.NewMemory()
	ctx := context.Background()

	kp, err := keyvault.GenerateKeyPair()
	require.NoError(t, err)
	doc, err := json.Marshal(kp.PublicKey)
	require.NoError(t, err)
	require.NoError(t, rm.keys.Upsert(ctx, &models.UserEncryptionKey{ID: kp.ID, UserID: "u1", PublicKey: string(doc)}))
	require.NoError(t, rm.keys.SetPrimary(ctx, "u1", kp.ID))
	_, err = rm.claims.Sync(ctx, "u1", []string{"alias@example.com"})
	require.NoError(t, err)

	return &emailFixture{
		svc:   NewEmailService(db, rm, blobs, logging.Nop{}),
		rm:    rm,
		mock:  mock,
		blobs: blobs,
		keys:  keyvault.NewManager([]keyvault.KeyPair{*kp}),
	}
}

func inbound() envelope.InboundEmail {
	return envelope.InboundEmail{
		From:         "shop@store.example",
		To:           "Alias@Example.com",
		Subject:      "Your order",
		MessagePlain: "thanks",
		DateReceived: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Attachments: []envelope.Attachment{
			{Filename: "invoice.pdf", MimeType: "application/pdf", Content: []byte("%PDF-1.7")},
		},
	}
}

func TestIngest_StoresCiphertextOnly(t *testing.T) {
	f := newEmailFixture(t)
	ctx := context.Background()
	expectCommits(f.mock, 1)

	id, err := f.svc.Ingest(ctx, inbound())
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, f.blobs.Len())

	stored := f.rm.emails.emails[0]
	assert.Equal(t, "u1", stored.UserID)
	assert.NotContains(t, stored.Subject, "order")
	require.Len(t, f.rm.emails.atts, 1)
	assert.True(t, strings.HasPrefix(f.rm.emails.atts[0].StorageKey, "users/u1/2"))

	list, err := f.svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	msg, err := envelope.Decrypt(f.keys, list[0])
	require.NoError(t, err)
	assert.Equal(t, "Your order", msg.Subject)
	assert.Equal(t, "thanks", msg.MessagePlain)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "invoice.pdf", msg.Attachments[0].Filename)
	assert.Nil(t, msg.Attachments[0].Content)

	ct, ok := f.blobs.Get(f.rm.emails.atts[0].StorageKey)
	require.True(t, ok)
	content, err := envelope.OpenAttachment(f.keys, list[0], ct)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), content)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestIngest_UnclaimedAddress(t *testing.T) {
	f := newEmailFixture(t)
	msg := inbound()
	msg.To = "nobody@example.com"

	_, err := f.svc.Ingest(context.Background(), msg)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, 0, f.blobs.Len())
}

func TestIngest_NoPrimaryKey(t *testing.T) {
	f := newEmailFixture(t)
	_, err := f.rm.claims.Sync(context.Background(), "u2", []string{"other@example.com"})
	require.NoError(t, err)
	msg := inbound()
	msg.To = "other@example.com"

	_, err = f.svc.Ingest(context.Background(), msg)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestIngest_RollbackRemovesBlobs(t *testing.T) {
	f := newEmailFixture(t)
	f.rm.emails.attErr = errBoom{}
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.Ingest(context.Background(), inbound())
	assert.ErrorIs(t, err, errBoom{})
	assert.Equal(t, 0, f.blobs.Len())
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestEmail_OwnershipAndDelete(t *testing.T) {
	f := newEmailFixture(t)
	ctx := context.Background()
	expectCommits(f.mock, 1)

	id, err := f.svc.Ingest(ctx, inbound())
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, "u2", id)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	e, err := f.svc.Get(ctx, "u1", id)
	require.NoError(t, err)
	require.Len(t, e.Attachments, 1)

	_, err = f.svc.AttachmentURL(ctx, "u2", id, e.Attachments[0].ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	url, err := f.svc.AttachmentURL(ctx, "u1", id, e.Attachments[0].ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "memory://users/u1/"))

	_, err = f.svc.AttachmentURL(ctx, "u1", id, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, "u2", id), common.ErrorNotFound)
	require.NoError(t, f.svc.Delete(ctx, "u1", id))

	list, err := f.svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}
