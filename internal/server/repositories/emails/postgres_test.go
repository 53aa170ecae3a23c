package emails

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emailCols = []string{"id", "user_id", "encryption_key_id", "encrypted_symmetric_key", "from_address",
	"to_address", "subject", "message_html", "message_plain", "message_preview", "headers", "date_received", "is_deleted"}

var attCols = []string{"id", "email_id", "filename", "mime_type", "filesize", "storage_key"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func emailRow(rows *sqlmock.Rows, id string, at time.Time) *sqlmock.Rows {
	return rows.AddRow(id, "u1", "k1", "wrapped", "sender@example.org", "shop@example.com",
		"s", "h", "p", "pv", "hd", at, false)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Now()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+emails`).
		WithArgs("e1", "u1", "k1", "wrapped", "f", "t", "s", "h", "p", "pv", "hd", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e, err := repo.Create(context.Background(), &models.Email{
		ID: "e1", UserID: "u1", EncryptionKeyID: "k1", EncryptedSymmetricKey: "wrapped",
		From: "f", To: "t", Subject: "s", MessageHTML: "h", MessagePlain: "p", MessagePreview: "pv",
		Headers: "hd", DateReceived: at,
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
}

func TestCreateAttachment_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+email_attachments`).WillReturnError(errors.New("fk"))

	_, err := repo.CreateAttachment(context.Background(), &models.EmailAttachment{ID: "a1", EmailID: "e1"})
	assert.ErrorContains(t, err, "db error: fk")
}

func TestListForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	rows := sqlmock.NewRows(emailCols)
	emailRow(rows, "e2", now)
	emailRow(rows, "e1", now.Add(-time.Hour))

	mock.ExpectQuery(`WHERE user_id = \$1 AND NOT is_deleted ORDER BY date_received DESC$`).WithArgs("u1").WillReturnRows(rows)

	out, err := repo.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "e2", out[0].ID)
	assert.Equal(t, "k1", out[0].EncryptionKeyID)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM emails WHERE id = \$1 AND user_id = \$2 AND NOT is_deleted$`).WithArgs("e1", "u1").
		WillReturnRows(emailRow(sqlmock.NewRows(emailCols), "e1", time.Now()))

	e, err := repo.Get(context.Background(), "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, "wrapped", e.EncryptedSymmetricKey)

	mock.ExpectQuery(`FROM emails`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "u2", "e1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAttachments(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM email_attachments WHERE email_id = \$1 ORDER BY filename$`).WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(attCols).AddRow("a1", "e1", "sealed", "text/plain", int64(5), "e1/a1"))

	out, err := repo.Attachments(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "e1/a1", out[0].StorageKey)
}

func TestGetAttachment(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM email_attachments WHERE id = \$1 AND email_id = \$2$`).WithArgs("a1", "e1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAttachment(context.Background(), "e1", "a1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSoftDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `^UPDATE emails SET is_deleted = TRUE WHERE id = \$1 AND user_id = \$2 AND NOT is_deleted$`
	mock.ExpectExec(q).WithArgs("e1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("e1", "u1").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.SoftDelete(context.Background(), "u1", "e1"))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), "u1", "e1"), common.ErrorNotFound)
}
