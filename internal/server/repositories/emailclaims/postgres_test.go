package emailclaims

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertQ = `(?s)^INSERT\s+INTO\s+email_claims\s*\(address,\s*user_id\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s+\(address\)\s+DO\s+NOTHING$`

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestSync(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM email_claims WHERE user_id = \$1$`).WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(insertQ).WithArgs("shop@example.com", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertQ).WithArgs("taken@example.com", "u1").WillReturnResult(sqlmock.NewResult(0, 0))

	skipped, err := repo.Sync(context.Background(), "u1",
		[]string{" Shop@Example.com", "shop@example.com", "", "taken@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"taken@example.com"}, skipped)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByAddress(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(`FROM email_claims WHERE address = \$1$`).WithArgs("shop@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"address", "user_id", "created_at"}).AddRow("shop@example.com", "u1", now))

	c, err := repo.FindByAddress(context.Background(), "SHOP@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", c.UserID)
}

func TestFindByAddress_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM email_claims`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByAddress(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListForUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`WHERE user_id = \$1 ORDER BY address$`).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"address", "user_id", "created_at"}).
			AddRow("a@example.com", "u1", now).
			AddRow("b@example.com", "u1", now))

	out, err := repo.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "b@example.com", out[1].Address)
}
