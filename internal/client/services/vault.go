package services

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
)

// Snapshot is the encrypted vault as last seen on the server.
type Snapshot struct {
	Blob     string
	Version  string
	Revision int64
}

// VaultService moves the encrypted vault between the server and the local
// cache. It never sees plaintext.
type VaultService interface {
	// Pull fetches the latest revision and refreshes the cache. An empty
	// Blob means the account has no vault yet.
	Pull(ctx context.Context) (*Snapshot, error)
	// Cached returns the cached snapshot or client.ErrLocalDataNotAvailable.
	Cached(ctx context.Context) (*Snapshot, error)
	// Push uploads a new revision on top of req.CurrentRevisionNumber.
	// common.ErrRevisionConflict means someone else saved first.
	Push(ctx context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error)
	// ChangePassword re-keys the account and caches the new parameters.
	ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (int64, error)
}

type vaultService struct {
	client client.Client
	db     *sql.DB
}

func NewVaultService(client client.Client, db *sql.DB) VaultService {
	return &vaultService{client: client, db: db}
}

func (s *vaultService) Pull(ctx context.Context) (*Snapshot, error) {
	resp, err := s.client.GetVault(ctx)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Blob: resp.Vault, Version: resp.Version, Revision: resp.VaultRevisionNumber}

	params := map[string]string{}
	if resp.Salt != "" {
		params[metadata.KeySalt] = resp.Salt
		params[metadata.KeyEncryptionType] = resp.EncryptionType
		params[metadata.KeyEncryptionSettings] = resp.EncryptionSettings
	}
	if snap.Blob != "" {
		if err := s.store(ctx, snap, params); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

func (s *vaultService) Cached(ctx context.Context) (*Snapshot, error) {
	m, err := metadata.NewSQLiteRepository(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	if m[metadata.KeyVault] == "" {
		return nil, client.ErrLocalDataNotAvailable
	}
	rev, err := strconv.ParseInt(m[metadata.KeyVaultRevision], 10, 64)
	if err != nil {
		return nil, client.ErrLocalDataNotAvailable
	}
	return &Snapshot{Blob: m[metadata.KeyVault], Version: m[metadata.KeyVaultVersion], Revision: rev}, nil
}

func (s *vaultService) Push(ctx context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error) {
	resp, err := s.client.SaveVault(ctx, req)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Blob: req.Blob, Version: req.Version, Revision: resp.NewRevisionNumber}
	if err := s.store(ctx, snap, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *vaultService) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (int64, error) {
	resp, err := s.client.ChangePassword(ctx, req)
	if err != nil {
		return 0, err
	}
	snap := &Snapshot{Blob: req.Blob, Version: req.Version, Revision: resp.NewRevisionNumber}
	err = s.store(ctx, snap, map[string]string{
		metadata.KeySalt:               req.Salt,
		metadata.KeyEncryptionType:     req.EncryptionType,
		metadata.KeyEncryptionSettings: req.EncryptionSettings,
	})
	if err != nil {
		return 0, err
	}
	return resp.NewRevisionNumber, nil
}

// store writes the snapshot and extra login parameters atomically. An
// older revision never overwrites a newer cached one.
func (s *vaultService) store(ctx context.Context, snap *Snapshot, extra map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		cur, err := repo.Get(ctx, metadata.KeyVaultRevision)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		if n, perr := strconv.ParseInt(cur, 10, 64); perr == nil && n > snap.Revision {
			return nil
		}

		values := map[string]string{
			metadata.KeyVault:         snap.Blob,
			metadata.KeyVaultVersion:  snap.Version,
			metadata.KeyVaultRevision: strconv.FormatInt(snap.Revision, 10),
		}
		for k, v := range extra {
			values[k] = v
		}
		for k, v := range values {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}
