package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/keyvault"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/config"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/emailclaims"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/repomanager"
)

// VaultResponse is what a client needs to unlock: the latest blob and the
// KDF description. Vault is empty and RevisionNumber 0 before the first save.
type VaultResponse struct {
	Vault               string
	Version             string
	RevisionNumber      int64
	EncryptionType      string
	EncryptionSettings  string
	Salt                string
	PublicEmailDomains  []string
	PrivateEmailDomains []string
}

// PublicKeyUpload is the public half of the client's primary key pair.
type PublicKeyUpload struct {
	ID        string
	PublicKey string // JWK JSON
}

type SaveVaultRequest struct {
	Blob                  string
	Version               string
	CurrentRevisionNumber int64
	EncryptionPublicKey   *PublicKeyUpload
	CredentialsCount      int
	EmailAddressList      []string
}

type SaveVaultResult struct {
	NewRevisionNumber int64
	// RejectedAddresses are claimed by someone else or outside the served domains.
	RejectedAddresses []string
}

type ChangePasswordRequest struct {
	Salt                  string
	Verifier              string
	EncryptionType        string
	EncryptionSettings    string
	Blob                  string
	Version               string
	CurrentRevisionNumber int64
	CredentialsCount      int
}

type VaultService struct {
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	logger         logging.Logger
	publicDomains  []string
	privateDomains []string
}

func NewVaultService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *VaultService {
	return &VaultService{
		db:             db,
		repomanager:    m,
		logger:         logger.With("module", "vault"),
		publicDomains:  cfg.PublicEmailDomains,
		privateDomains: cfg.PrivateEmailDomains,
	}
}

func (s *VaultService) GetVault(ctx context.Context, userID string) (*VaultResponse, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &VaultResponse{
		EncryptionType:      user.EncryptionType,
		EncryptionSettings:  user.EncryptionSettings,
		Salt:                user.Salt,
		PublicEmailDomains:  s.publicDomains,
		PrivateEmailDomains: s.privateDomains,
	}

	v, err := s.repomanager.Vaults(s.db).Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return resp, nil
		}
		return nil, err
	}
	resp.Vault = v.VaultBlob
	resp.Version = v.Version
	resp.RevisionNumber = v.RevisionNumber
	return resp, nil
}

// SaveVault stores a new revision if req is based on the latest one.
// Otherwise it returns common.ErrRevisionConflict and the client must pull,
// re-apply its change and retry.
func (s *VaultService) SaveVault(ctx context.Context, userID string, req SaveVaultRequest) (*SaveVaultResult, error) {
	if req.Blob == "" || req.Version == "" {
		return nil, common.ErrorValidation
	}
	if req.EncryptionPublicKey != nil {
		if err := validatePublicJWK(req.EncryptionPublicKey.PublicKey); err != nil {
			return nil, err
		}
	}

	addresses, rejected := s.filterAddresses(req.EmailAddressList)

	var res SaveVaultResult
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, rev, err := s.lockRevision(ctx, tx, userID, req.CurrentRevisionNumber)
		if err != nil {
			return err
		}

		if _, err := s.repomanager.Vaults(tx).Create(ctx, &models.Vault{
			UserID:             userID,
			RevisionNumber:     rev + 1,
			VaultBlob:          req.Blob,
			Version:            req.Version,
			EncryptionType:     user.EncryptionType,
			EncryptionSettings: user.EncryptionSettings,
			Salt:               user.Salt,
			Verifier:           user.Verifier,
			CredentialsCount:   req.CredentialsCount,
		}); err != nil {
			return err
		}

		if k := req.EncryptionPublicKey; k != nil {
			keys := s.repomanager.EncryptionKeys(tx)
			if err := keys.Upsert(ctx, &models.UserEncryptionKey{ID: k.ID, UserID: userID, PublicKey: k.PublicKey}); err != nil {
				return err
			}
			if err := keys.SetPrimary(ctx, userID, k.ID); err != nil {
				return err
			}
		}

		skipped, err := s.repomanager.EmailClaims(tx).Sync(ctx, userID, addresses)
		if err != nil {
			return err
		}

		res.NewRevisionNumber = rev + 1
		res.RejectedAddresses = append(rejected, skipped...)
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrRevisionConflict) {
			s.logger.Info(ctx, "vault revision conflict", "user_id", userID, "base", req.CurrentRevisionNumber)
		}
		return nil, err
	}

	s.logger.Info(ctx, "vault saved", "user_id", userID, "revision", res.NewRevisionNumber)
	return &res, nil
}

// ChangePassword replaces the SRP credentials and KDF, stores the vault
// re-encrypted under the new Master Key and signs out every session by
// deleting all refresh tokens. Access tokens already issued stay valid until
// they expire.
func (s *VaultService) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (int64, error) {
	if !isHex(req.Salt) || !isHex(req.Verifier) || req.Blob == "" || req.Version == "" {
		return 0, common.ErrorValidation
	}
	if err := cryptox.ValidateKdf(req.EncryptionType, req.EncryptionSettings); err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	var newRev int64
	var revoked int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		user, rev, err := s.lockRevision(ctx, tx, userID, req.CurrentRevisionNumber)
		if err != nil {
			return err
		}

		user.Salt = req.Salt
		user.Verifier = req.Verifier
		user.EncryptionType = req.EncryptionType
		user.EncryptionSettings = req.EncryptionSettings
		if err := s.repomanager.Users(tx).UpdateCredentials(ctx, user); err != nil {
			return err
		}

		if _, err := s.repomanager.Vaults(tx).Create(ctx, &models.Vault{
			UserID:             userID,
			RevisionNumber:     rev + 1,
			VaultBlob:          req.Blob,
			Version:            req.Version,
			EncryptionType:     req.EncryptionType,
			EncryptionSettings: req.EncryptionSettings,
			Salt:               req.Salt,
			Verifier:           req.Verifier,
			CredentialsCount:   req.CredentialsCount,
		}); err != nil {
			return err
		}

		revoked, err = s.repomanager.RefreshTokens(tx).DeleteAllForUser(ctx, userID)
		if err != nil {
			return err
		}
		newRev = rev + 1
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "master password changed", "user_id", userID, "revision", newRev, "sessions_revoked", revoked)
	return newRev, nil
}

// lockRevision locks the user's vault history and checks the client's base
// revision against it.
func (s *VaultService) lockRevision(ctx context.Context, tx dbx.DBTX, userID string, base int64) (*models.User, int64, error) {
	rev, err := s.repomanager.Vaults(tx).LatestRevisionForUpdate(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if rev != base {
		return nil, 0, common.ErrRevisionConflict
	}
	user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return user, rev, nil
}

func (s *VaultService) filterAddresses(list []string) (ok, rejected []string) {
	for _, a := range list {
		n := emailclaims.Normalize(a)
		at := strings.LastIndexByte(n, '@')
		if at <= 0 {
			rejected = append(rejected, a)
			continue
		}
		domain := n[at+1:]
		if slices.Contains(s.publicDomains, domain) || slices.Contains(s.privateDomains, domain) {
			ok = append(ok, n)
		} else {
			rejected = append(rejected, a)
		}
	}
	return ok, rejected
}

func validatePublicJWK(doc string) error {
	var k keyvault.PublicJWK
	if err := json.Unmarshal([]byte(doc), &k); err != nil {
		return fmt.Errorf("%w: public key: %v", common.ErrorValidation, err)
	}
	if _, err := k.RSA(); err != nil {
		return fmt.Errorf("%w: public key: %v", common.ErrorValidation, err)
	}
	return nil
}
