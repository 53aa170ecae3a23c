package session

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/repositories/vault"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/services"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"github.com/dmitrijs2005/aliaskeeper/internal/srp"
	"github.com/dmitrijs2005/aliaskeeper/internal/vaultschema"
)

// maxSaveAttempts bounds the pull, re-apply and save loop on conflicts.
const maxSaveAttempts = 3

// opened is a decrypted and migrated vault that is not installed yet.
type opened struct {
	img        *image
	keys       *keyvault.Manager
	revision   int64
	pendingKey *pb.PublicKey
	dirty      bool
}

// open decrypts snap with mk. An empty snapshot creates a new vault. The
// result is dirty when it differs from snap: new, migrated or given its
// first key pair.
func (s *Session) open(ctx context.Context, snap *services.Snapshot, mk []byte) (*opened, error) {
	o := &opened{}
	if snap != nil {
		o.revision = snap.Revision
	}

	if snap == nil || snap.Blob == "" {
		img, err := openImage(ctx, nil)
		if err != nil {
			return nil, err
		}
		if err := vaultschema.Default.Create(ctx, img.conn); err != nil {
			img.close()
			return nil, err
		}
		o.img, o.dirty = img, true
	} else {
		plain, err := cryptox.DecryptVault(snap.Blob, mk)
		if err != nil {
			return nil, ErrWrongPasswordOrCorrupt
		}
		img, err := openImage(ctx, plain)
		common.WipeByteArray(plain)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWrongPasswordOrCorrupt, err)
		}
		from, err := vaultschema.Default.Migrate(ctx, img.conn, 0)
		if err != nil {
			img.close()
			if errors.Is(err, vaultschema.ErrSchemaValidation) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrWrongPasswordOrCorrupt, err)
		}
		if from < vaultschema.Default.Latest() {
			s.logger.Info(ctx, "vault migrated", "from", from, "to", vaultschema.Default.Latest())
			o.dirty = true
		}
		o.img = img
	}

	repo := vault.NewSQLiteRepository(o.img.conn)
	keys, err := keyvault.Load(ctx, repo)
	if err != nil {
		o.img.close()
		return nil, err
	}
	if _, err := keys.Primary(); errors.Is(err, keyvault.ErrNoPrimaryKey) {
		kp, err := keys.EnsurePrimary(ctx, repo)
		if err != nil {
			o.img.close()
			return nil, err
		}
		if o.pendingKey, err = publicKeyUpload(kp); err != nil {
			o.img.close()
			return nil, err
		}
		o.dirty = true
	}
	o.keys = keys
	return o, nil
}

func (s *Session) install(o *opened) {
	s.img.close()
	s.img = o.img
	s.keys = o.keys
	s.revision = o.revision
	if o.pendingKey != nil {
		s.pendingKey = o.pendingKey
	}
}

// openLocked opens snap and switches to Unlocked. A dirty vault is saved
// right away; if that fails the vault stays unlocked and the change goes
// out with the next save.
func (s *Session) openLocked(ctx context.Context, snap *services.Snapshot, mk []byte) error {
	o, err := s.open(ctx, snap, mk)
	if err != nil {
		return err
	}
	s.install(o)
	s.mk = mk
	s.state = Unlocked
	s.resetTimerLocked()

	if o.dirty {
		if err := s.saveLocked(ctx); err != nil {
			s.logger.Warn(ctx, "initial vault save failed", "error", err)
		}
	}
	return nil
}

func publicKeyUpload(kp *keyvault.KeyPair) (*pb.PublicKey, error) {
	doc, err := json.Marshal(kp.PublicKey)
	if err != nil {
		return nil, err
	}
	return &pb.PublicKey{Id: kp.ID, PublicKey: string(doc)}, nil
}

func (s *Session) requireUnlocked() error {
	if s.state != Unlocked {
		return ErrLocked
	}
	s.resetTimerLocked()
	return nil
}

// saveLocked encrypts the current database and uploads it on top of the
// revision it was opened from.
func (s *Session) saveLocked(ctx context.Context) error {
	buf, err := s.img.bytes()
	if err != nil {
		return err
	}
	blob, err := cryptox.EncryptVault(buf, s.mk)
	common.WipeByteArray(buf)
	if err != nil {
		return err
	}

	repo := vault.NewSQLiteRepository(s.img.conn)
	count, err := repo.CredentialsCount(ctx)
	if err != nil {
		return err
	}
	addrs, err := repo.EmailAddresses(ctx)
	if err != nil {
		return err
	}
	version, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	resp, err := s.vaults.Push(ctx, &pb.SaveVaultRequest{
		Blob:                  blob,
		Version:               version,
		CurrentRevisionNumber: s.revision,
		EncryptionPublicKey:   s.pendingKey,
		CredentialsCount:      int32(count),
		EmailAddressList:      addrs,
	})
	if err != nil {
		return err
	}
	s.revision = resp.NewRevisionNumber
	s.pendingKey = nil
	if len(resp.RejectedAddresses) > 0 {
		s.logger.Warn(ctx, "alias addresses claimed by another account", "addresses", resp.RejectedAddresses)
	}
	return nil
}

func (s *Session) schemaVersion(ctx context.Context) (string, error) {
	rev, err := vaultschema.CurrentRevision(ctx, s.img.conn)
	if err != nil {
		return "", err
	}
	v, err := vaultschema.Default.VersionForRevision(rev)
	if err != nil {
		return "", err
	}
	return v.Version, nil
}

// Mutate runs fn in a transaction on the vault and saves the result. When
// the save fails the vault is put back as it was. On a revision conflict
// the newer server vault is loaded and fn applied again.
func (s *Session) Mutate(ctx context.Context, fn func(ctx context.Context, repo vault.Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}
	return s.mutateLocked(ctx, fn)
}

func (s *Session) mutateLocked(ctx context.Context, fn func(ctx context.Context, repo vault.Repository) error) error {
	for attempt := 1; ; attempt++ {
		before, err := s.img.bytes()
		if err != nil {
			return err
		}
		pending := s.pendingKey

		err = dbx.WithTx(ctx, s.img.conn, nil, func(ctx context.Context, tx dbx.DBTX) error {
			return fn(ctx, vault.NewSQLiteRepository(tx))
		})
		if err == nil {
			err = s.saveLocked(ctx)
			if err == nil {
				common.WipeByteArray(before)
				return nil
			}
			if rerr := s.img.load(before); rerr != nil {
				common.WipeByteArray(before)
				return errors.Join(err, rerr)
			}
		}
		common.WipeByteArray(before)
		s.pendingKey = pending
		if rerr := s.reloadKeys(ctx); rerr != nil {
			return errors.Join(err, rerr)
		}

		if !errors.Is(err, common.ErrRevisionConflict) || attempt == maxSaveAttempts {
			return err
		}
		s.logger.Info(ctx, "vault changed on the server, reapplying", "attempt", attempt)
		snap, perr := s.vaults.Pull(ctx)
		if perr != nil {
			return perr
		}
		o, perr := s.open(ctx, snap, s.mk)
		if perr != nil {
			return perr
		}
		s.install(o)
	}
}

func (s *Session) reloadKeys(ctx context.Context) error {
	keys, err := keyvault.Load(ctx, vault.NewSQLiteRepository(s.img.conn))
	if err != nil {
		return err
	}
	s.keys = keys
	return nil
}

// RotateKey makes a new primary key pair. Its public half is uploaded with
// the save so new email is encrypted for it; older pairs stay for old mail.
func (s *Session) RotateKey(ctx context.Context) (string, error) {
	var id string
	err := s.Mutate(ctx, func(ctx context.Context, repo vault.Repository) error {
		kp, err := s.keys.Rotate(ctx, repo)
		if err != nil {
			return err
		}
		up, err := publicKeyUpload(kp)
		if err != nil {
			return err
		}
		s.pendingKey = up
		id = kp.ID
		return nil
	})
	return id, err
}

// ChangePassword re-keys the vault under a new password, salt and the
// current default KDF.
func (s *Session) ChangePassword(ctx context.Context, newPassword []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireUnlocked(); err != nil {
		return err
	}

	salt := srp.GenerateSalt()
	kdf, settings := cryptox.DefaultKdf()
	mk, err := cryptox.DeriveMasterKey(newPassword, []byte(salt), kdf, settings)
	if err != nil {
		return err
	}
	ok := false
	defer func() {
		if !ok {
			common.WipeByteArray(mk)
		}
	}()

	x, err := srp.Default.DerivePrivateKey(salt, s.username, hex.EncodeToString(mk))
	if err != nil {
		return err
	}
	verifier, err := srp.Default.DeriveVerifier(x)
	if err != nil {
		return err
	}

	buf, err := s.img.bytes()
	if err != nil {
		return err
	}
	blob, err := cryptox.EncryptVault(buf, mk)
	common.WipeByteArray(buf)
	if err != nil {
		return err
	}
	count, err := vault.NewSQLiteRepository(s.img.conn).CredentialsCount(ctx)
	if err != nil {
		return err
	}
	version, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	rev, err := s.vaults.ChangePassword(ctx, &pb.ChangePasswordRequest{
		Salt:                  salt,
		Verifier:              verifier,
		EncryptionType:        kdf,
		EncryptionSettings:    settings,
		Blob:                  blob,
		Version:               version,
		CurrentRevisionNumber: s.revision,
		CredentialsCount:      int32(count),
	})
	if err != nil {
		return err
	}

	ok = true
	common.WipeByteArray(s.mk)
	s.mk = mk
	s.revision = rev

	if s.remembered {
		if err := <-s.store.Store(ctx, mk); err != nil {
			s.store.Clear()
			s.remembered = false
			s.logger.Warn(ctx, "stored key removed after password change", "error", err)
		}
	}
	return nil
}
