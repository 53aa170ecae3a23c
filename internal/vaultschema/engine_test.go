package vaultschema

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var allTables = []string{
	"Aliases", "Attachments", "Credentials", "EncryptionKeys",
	"Passwords", "Services", "Settings", "TotpCodes",
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type column struct {
	CID     int
	Name    string
	Type    string
	NotNull int
	Default sql.NullString
	PK      int
}

// schemaOf describes every table (columns in declaration order) and index.
func schemaOf(t *testing.T, db *sql.DB) map[string][]string {
	t.Helper()
	ctx := context.Background()
	names, err := tableNames(ctx, db)
	require.NoError(t, err)

	out := map[string][]string{}
	for _, n := range names {
		rows, err := db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info(%q)`, n))
		require.NoError(t, err)
		for rows.Next() {
			var c column
			require.NoError(t, rows.Scan(&c.CID, &c.Name, &c.Type, &c.NotNull, &c.Default, &c.PK))
			out[n] = append(out[n], fmt.Sprintf("%d %s %s nn=%d def=%v pk=%d", c.CID, c.Name, c.Type, c.NotNull, c.Default, c.PK))
		}
		require.NoError(t, rows.Close())
	}

	rows, err := db.QueryContext(ctx,
		`SELECT name, tbl_name, sql FROM sqlite_master WHERE type = 'index' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var name, tbl, ddl string
		require.NoError(t, rows.Scan(&name, &tbl, &ddl))
		out["~indexes"] = append(out["~indexes"], name+" on "+tbl+": "+ddl)
	}
	return out
}

func TestEngine_UpgradeFromZeroMatchesCreate(t *testing.T) {
	ctx := context.Background()

	upgraded := openDB(t)
	scripts, err := Default.UpgradeVaultSQL(0)
	require.NoError(t, err)
	require.Len(t, scripts, Default.Latest())
	for _, s := range scripts {
		for _, stmt := range statements(s.SQL) {
			_, err := upgraded.ExecContext(ctx, stmt)
			require.NoError(t, err, "revision %d", s.Revision)
		}
	}

	created := openDB(t)
	for _, stmt := range statements(Default.CreateVaultSQL().SQL) {
		_, err := created.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	assert.Equal(t, schemaOf(t, created), schemaOf(t, upgraded))
}

func TestEngine_UpgradeVaultSQL(t *testing.T) {
	latest := Default.Latest()

	for n := 0; n <= latest; n++ {
		s, err := Default.UpgradeVaultSQL(n, n)
		require.NoError(t, err)
		assert.Empty(t, s, "UpgradeVaultSQL(%d, %d)", n, n)
	}

	s, err := Default.UpgradeVaultSQL(latest)
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = Default.UpgradeVaultSQL(3, 1)
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = Default.UpgradeVaultSQL(1, 4)
	require.NoError(t, err)
	require.Len(t, s, 3)
	assert.Equal(t, []int{2, 3, 4}, []int{s[0].Revision, s[1].Revision, s[2].Revision})

	_, err = Default.UpgradeVaultSQL(-1)
	assert.ErrorIs(t, err, ErrUnknownRevision)
	_, err = Default.UpgradeVaultSQL(0, latest+1)
	assert.ErrorIs(t, err, ErrUnknownRevision)
}

func TestEngine_Versions(t *testing.T) {
	vs := Default.Versions()
	require.Len(t, vs, Default.Latest())
	for i, v := range vs {
		assert.Equal(t, i+1, v.Revision)
		assert.NotEmpty(t, v.Version)
		assert.NotEmpty(t, v.ReleaseVersion)
	}

	r, err := Default.RevisionForVersion("1.2.0")
	require.NoError(t, err)
	assert.Equal(t, 3, r)

	r, err = Default.RevisionForVersion("v1.3.0")
	require.NoError(t, err)
	assert.Equal(t, 4, r)

	_, err = Default.RevisionForVersion("9.9.9")
	assert.ErrorIs(t, err, ErrUnknownVersion)

	v, err := Default.VersionForRevision(1)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.Version)

	_, err = Default.VersionForRevision(0)
	assert.ErrorIs(t, err, ErrUnknownRevision)

	create := Default.CreateVaultSQL()
	assert.Equal(t, Default.Latest(), create.Revision)
	assert.Equal(t, vs[len(vs)-1].Version, create.Version)

	s, err := Default.UpgradeToVersion(2, "1.3.0")
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, 4, s[1].Revision)
}

func TestEngine_MigrateFromEmpty(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	from, err := Default.Migrate(ctx, db, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, from)

	rev, err := CurrentRevision(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, Default.Latest(), rev)

	names, err := tableNames(ctx, db)
	require.NoError(t, err)
	assert.ElementsMatch(t, allTables, names)

	from, err = Default.Migrate(ctx, db, 0)
	require.NoError(t, err)
	assert.Equal(t, Default.Latest(), from)
}

func TestEngine_MigrateStepwise(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := Default.Migrate(ctx, db, 2)
	require.NoError(t, err)
	require.NoError(t, Default.Validate(ctx, db, 2))

	_, err = db.ExecContext(ctx, `INSERT INTO Aliases (Id, BirthDate, CreatedAt, UpdatedAt) VALUES ('a1', '2000-01-01', 'now', 'now')`)
	require.NoError(t, err)

	from, err := Default.Migrate(ctx, db, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, from)

	var deleted int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT IsDeleted FROM Aliases WHERE Id = 'a1'`).Scan(&deleted))
	assert.Equal(t, 0, deleted)
}

func TestEngine_MigrateRejectsUnexpectedSchema(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := db.ExecContext(ctx, `CREATE TABLE Stray (Id TEXT)`)
	require.NoError(t, err)

	_, err = Default.Migrate(ctx, db, 0)
	require.ErrorIs(t, err, ErrSchemaValidation)

	rev, err := CurrentRevision(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 0, rev)

	names, err := tableNames(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stray"}, names)
}

func TestEngine_MigrateRejectsNewerRevision(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	require.NoError(t, setRevision(ctx, db, Default.Latest()+1))

	_, err := Default.Migrate(ctx, db, 0)
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

func TestEngine_MigrateRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	_, err := Default.Migrate(ctx, db, 1)
	require.NoError(t, err)

	// a column step 5 wants to add already exists, so step 5 fails after
	// steps 2-4 have been executed inside the same transaction
	_, err = db.ExecContext(ctx, `ALTER TABLE Aliases ADD COLUMN IsDeleted INTEGER`)
	require.NoError(t, err)

	_, err = Default.Migrate(ctx, db, 0)
	require.Error(t, err)

	rev, err := CurrentRevision(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, rev)

	names, err := tableNames(ctx, db)
	require.NoError(t, err)
	assert.NotContains(t, names, "EncryptionKeys")
}

func TestEngine_Create(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	require.NoError(t, Default.Create(ctx, db))
	require.NoError(t, Default.Validate(ctx, db, Default.Latest()))

	rev, err := CurrentRevision(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, Default.Latest(), rev)

	assert.ErrorIs(t, Default.Create(ctx, db), ErrSchemaValidation)
}

func TestEngine_ExpectedTables(t *testing.T) {
	got, err := Default.ExpectedTables(0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = Default.ExpectedTables(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aliases", "Attachments", "Credentials", "Passwords", "Services"}, got)

	got, err = Default.ExpectedTables(Default.Latest())
	require.NoError(t, err)
	assert.Equal(t, allTables, got)
}

func TestStatements(t *testing.T) {
	got := statements("-- header\nCREATE TABLE a (x INT);\n\n  -- note\nCREATE INDEX i ON a (x);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a (x)"}, got)
}
