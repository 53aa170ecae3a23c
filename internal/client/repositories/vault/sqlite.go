package vault

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func (r *SQLiteRepository) ListKeyPairs(ctx context.Context) ([]keyvault.KeyPair, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT Id, PublicKey, PrivateKey, IsPrimary, CreatedAt FROM EncryptionKeys WHERE IsDeleted = 0`)
	if err != nil {
		return nil, fmt.Errorf("failed to select encryption keys: %w", err)
	}
	defer rows.Close()

	var out []keyvault.KeyPair
	for rows.Next() {
		var (
			kp            keyvault.KeyPair
			pub, priv, ts string
		)
		if err := rows.Scan(&kp.ID, &pub, &priv, &kp.IsPrimary, &ts); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(pub), &kp.PublicKey); err != nil {
			return nil, fmt.Errorf("public key %s: %w", kp.ID, err)
		}
		if err := json.Unmarshal([]byte(priv), &kp.PrivateKey); err != nil {
			return nil, fmt.Errorf("private key %s: %w", kp.ID, err)
		}
		kp.CreatedAt = parseTime(ts)
		out = append(out, kp)
	}
	return out, rows.Err()
}

// InsertKeyPair stores kp as non-primary; SetPrimaryKeyPair promotes it.
func (r *SQLiteRepository) InsertKeyPair(ctx context.Context, kp keyvault.KeyPair) error {
	pub, err := json.Marshal(kp.PublicKey)
	if err != nil {
		return err
	}
	priv, err := json.Marshal(kp.PrivateKey)
	if err != nil {
		return err
	}
	created := kp.CreatedAt.UTC().Format(time.RFC3339Nano)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO EncryptionKeys (Id, PublicKey, PrivateKey, IsPrimary, CreatedAt, UpdatedAt)
		VALUES (?, ?, ?, 0, ?, ?)`,
		kp.ID, string(pub), string(priv), created, created)
	if err != nil {
		return fmt.Errorf("failed to insert encryption key: %w", err)
	}
	return nil
}

// SetPrimaryKeyPair demotes the current primary before promoting id, which
// the partial unique index on IsPrimary requires.
func (r *SQLiteRepository) SetPrimaryKeyPair(ctx context.Context, id string) error {
	ts := now()
	if _, err := r.db.ExecContext(ctx,
		`UPDATE EncryptionKeys SET IsPrimary = 0, UpdatedAt = ? WHERE IsPrimary = 1 AND Id <> ?`, ts, id); err != nil {
		return fmt.Errorf("failed to demote primary key: %w", err)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE EncryptionKeys SET IsPrimary = 1, UpdatedAt = ? WHERE Id = ? AND IsDeleted = 0`, ts, id)
	if err != nil {
		return fmt.Errorf("failed to promote key: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// AddCredential inserts the service, the alias, the credential and its
// password. Empty ids are generated.
func (r *SQLiteRepository) AddCredential(ctx context.Context, c *models.Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, id := range []*string{&c.ID, &c.Service.ID, &c.Alias.ID} {
		if *id == "" {
			*id = uuid.NewString()
		}
	}
	ts := now()
	birth := c.Alias.BirthDate
	if birth.IsZero() {
		birth = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO Services (Id, Name, Url, CreatedAt, UpdatedAt) VALUES (?, ?, ?, ?, ?)`,
		c.Service.ID, c.Service.Name, c.Service.URL, ts, ts); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO Aliases (Id, FirstName, LastName, NickName, BirthDate, Email, CreatedAt, UpdatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Alias.ID, c.Alias.FirstName, c.Alias.LastName, c.Alias.NickName,
		birth.Format(dateLayout), c.Alias.Email, ts, ts); err != nil {
		return fmt.Errorf("failed to insert alias: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO Credentials (Id, AliasId, Notes, Username, ServiceId, CreatedAt, UpdatedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Alias.ID, c.Notes, c.Username, c.Service.ID, ts, ts); err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO Passwords (Id, Value, CredentialId, CreatedAt, UpdatedAt) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), c.Password, c.ID, ts, ts); err != nil {
		return fmt.Errorf("failed to insert password: %w", err)
	}
	c.CreatedAt = parseTime(ts)
	c.UpdatedAt = c.CreatedAt
	return nil
}

// credentialQuery picks the newest password of each credential.
const credentialQuery = `
	SELECT c.Id, COALESCE(c.Username, ''), COALESCE(c.Notes, ''), c.CreatedAt, c.UpdatedAt,
		s.Id, COALESCE(s.Name, ''), COALESCE(s.Url, ''),
		a.Id, COALESCE(a.FirstName, ''), COALESCE(a.LastName, ''), COALESCE(a.NickName, ''),
		a.BirthDate, COALESCE(a.Email, ''),
		COALESCE((SELECT p.Value FROM Passwords p
			WHERE p.CredentialId = c.Id AND p.IsDeleted = 0
			ORDER BY p.CreatedAt DESC LIMIT 1), '')
	FROM Credentials c
	JOIN Services s ON s.Id = c.ServiceId
	JOIN Aliases a ON a.Id = c.AliasId
	WHERE c.IsDeleted = 0`

type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(s scanner) (*models.Credential, error) {
	var (
		c                      models.Credential
		created, updated, born string
	)
	err := s.Scan(&c.ID, &c.Username, &c.Notes, &created, &updated,
		&c.Service.ID, &c.Service.Name, &c.Service.URL,
		&c.Alias.ID, &c.Alias.FirstName, &c.Alias.LastName, &c.Alias.NickName,
		&born, &c.Alias.Email, &c.Password)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = parseTime(created)
	c.UpdatedAt = parseTime(updated)
	c.Alias.BirthDate, _ = time.Parse(dateLayout, born)
	return &c, nil
}

func (r *SQLiteRepository) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	rows, err := r.db.QueryContext(ctx, credentialQuery+` ORDER BY s.Name, c.Username`)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	var out []models.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetCredential(ctx context.Context, id string) (*models.Credential, error) {
	c, err := scanCredential(r.db.QueryRowContext(ctx, credentialQuery+` AND c.Id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return c, nil
}

// DeleteCredential flags the credential as deleted.
func (r *SQLiteRepository) DeleteCredential(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE Credentials SET IsDeleted = 1, UpdatedAt = ? WHERE Id = ? AND IsDeleted = 0`, now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) CredentialsCount(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Credentials WHERE IsDeleted = 0`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) EmailAddresses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT lower(Email) FROM Aliases
		WHERE IsDeleted = 0 AND Email IS NOT NULL AND Email <> ''
		ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to select alias addresses: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var v sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT Value FROM Settings WHERE Key = ? AND IsDeleted = 0`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", common.ErrorNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get setting[%s]: %w", key, err)
	}
	return v.String, nil
}

func (r *SQLiteRepository) SetSetting(ctx context.Context, key, value string) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO Settings (Key, Value, CreatedAt, UpdatedAt) VALUES (?, ?, ?, ?)
		ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value, UpdatedAt = excluded.UpdatedAt, IsDeleted = 0`,
		key, value, ts, ts)
	if err != nil {
		return fmt.Errorf("failed to set setting[%s]: %w", key, err)
	}
	return nil
}
