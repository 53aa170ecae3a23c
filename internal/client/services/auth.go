// Package services contains the application services of the aliaskeeper
// CLI: SRP login and registration, vault pull/push against the server with
// a local ciphertext cache, and email listing.
package services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aliaskeeper/internal/client/client"
	"github.com/dmitrijs2005/aliaskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"github.com/dmitrijs2005/aliaskeeper/internal/srp"
)

// SecondFactorPrompt asks the user for a TOTP or recovery code after the
// password proof was accepted.
type SecondFactorPrompt func(ctx context.Context) (client.Factor, string, error)

// AuthService defines authentication operations for the CLI.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	// Login runs the SRP exchange and returns the Master Key. prompt may be
	// nil when the account has no second factor.
	Login(ctx context.Context, username string, password []byte, rememberMe bool, prompt SecondFactorPrompt) ([]byte, error)
	// OfflineKey derives the Master Key from the cached login parameters
	// without contacting the server. The key is only proven correct once it
	// opens the cached vault.
	OfflineKey(ctx context.Context, username string, password []byte) ([]byte, error)
	CachedUsername(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

// Register creates the account with a fresh salt and the default KDF.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	salt := srp.GenerateSalt()
	kdf, settings := cryptox.DefaultKdf()

	mk, err := cryptox.DeriveMasterKey(password, []byte(salt), kdf, settings)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(mk)

	verifier, err := makeVerifier(salt, username, mk)
	if err != nil {
		return err
	}

	return a.client.Register(ctx, &pb.RegisterRequest{
		Username:           username,
		Salt:               salt,
		Verifier:           verifier,
		EncryptionType:     kdf,
		EncryptionSettings: settings,
	})
}

// makeVerifier derives the SRP verifier; the SRP password is the hex
// encoded Master Key.
func makeVerifier(salt, username string, mk []byte) (string, error) {
	x, err := srp.Default.DerivePrivateKey(salt, username, hex.EncodeToString(mk))
	if err != nil {
		return "", err
	}
	return srp.Default.DeriveVerifier(x)
}

func (a *authService) Login(ctx context.Context, username string, password []byte, rememberMe bool, prompt SecondFactorPrompt) ([]byte, error) {
	ch, err := a.client.Login(ctx, username)
	if err != nil {
		return nil, err
	}

	mk, err := cryptox.DeriveMasterKey(password, []byte(ch.Salt), ch.EncryptionType, ch.EncryptionSettings)
	if err != nil {
		return nil, err
	}
	ok := false
	defer func() {
		if !ok {
			common.WipeByteArray(mk)
		}
	}()

	x, err := srp.Default.DerivePrivateKey(ch.Salt, username, hex.EncodeToString(mk))
	if err != nil {
		return nil, err
	}
	eph := srp.Default.GenerateClientEphemeral()
	sess, err := srp.Default.DeriveClientSession(eph.Secret, ch.ServerEphemeral, ch.Salt, username, x)
	if err != nil {
		return nil, fmt.Errorf("srp session: %w", err)
	}

	req := &pb.ValidateRequest{
		Username:              username,
		ClientPublicEphemeral: eph.Public,
		ClientSessionProof:    sess.Proof,
		RememberMe:            rememberMe,
	}
	resp, err := a.client.Validate(ctx, req, client.FactorPassword)
	if err != nil {
		return nil, err
	}

	if resp.RequiresTwoFactor {
		if prompt == nil {
			return nil, common.ErrTwoFactorRequired
		}
		factor, code, err := prompt(ctx)
		if err != nil {
			return nil, err
		}
		req.Code = code
		if resp, err = a.client.Validate(ctx, req, factor); err != nil {
			return nil, err
		}
	}

	if err := srp.Default.VerifySession(eph.Public, sess, resp.ServerSessionProof); err != nil {
		// the server could not prove it knows the verifier; drop its tokens
		_ = a.client.Logout(ctx)
		return nil, client.ErrServerProof
	}

	if err := a.saveLoginParams(ctx, username, ch); err != nil {
		return nil, fmt.Errorf("offline data saving error: %w", err)
	}

	ok = true
	return mk, nil
}

// saveLoginParams caches what OfflineKey needs. A different user's cache
// is discarded first.
func (a *authService) saveLoginParams(ctx context.Context, username string, ch *pb.LoginResponse) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		prev, err := repo.Get(ctx, metadata.KeyUsername)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		if prev != "" && prev != username {
			if err := repo.Clear(ctx); err != nil {
				return err
			}
		}

		for k, v := range map[string]string{
			metadata.KeyUsername:           username,
			metadata.KeySalt:               ch.Salt,
			metadata.KeyEncryptionType:     ch.EncryptionType,
			metadata.KeyEncryptionSettings: ch.EncryptionSettings,
		} {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *authService) OfflineKey(ctx context.Context, username string, password []byte) ([]byte, error) {
	m, err := metadata.NewSQLiteRepository(a.db).List(ctx)
	if err != nil {
		return nil, err
	}
	if m[metadata.KeyUsername] == "" || m[metadata.KeySalt] == "" {
		return nil, client.ErrLocalDataNotAvailable
	}
	if m[metadata.KeyUsername] != username {
		return nil, client.ErrUnauthorized
	}
	return cryptox.DeriveMasterKey(password, []byte(m[metadata.KeySalt]),
		m[metadata.KeyEncryptionType], m[metadata.KeyEncryptionSettings])
}

func (a *authService) CachedUsername(ctx context.Context) (string, error) {
	u, err := metadata.NewSQLiteRepository(a.db).Get(ctx, metadata.KeyUsername)
	if errors.Is(err, common.ErrorNotFound) {
		return "", client.ErrLocalDataNotAvailable
	}
	return u, err
}

// Logout revokes the session on the server and wipes the local cache. The
// cache is wiped even when the server cannot be reached.
func (a *authService) Logout(ctx context.Context) error {
	rerr := a.client.Logout(ctx)
	if err := metadata.NewSQLiteRepository(a.db).Clear(ctx); err != nil {
		return err
	}
	if rerr != nil && !errors.Is(rerr, client.ErrUnavailable) {
		return rerr
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
