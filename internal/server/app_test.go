package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	return c
}

func TestNewApp_MigrationFailureClosesDB(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.MatchExpectationsInOrder(false)
	mock.ExpectClose()
	openDB = func(context.Context, string) (*sql.DB, error) { return db, nil }

	_, err = NewApp(context.Background(), testConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewApp_DatabaseUnavailable(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })

	boom := errors.New("connection refused")
	openDB = func(context.Context, string) (*sql.DB, error) { return nil, boom }

	_, err := NewApp(context.Background(), testConfig())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "db init error")
}
