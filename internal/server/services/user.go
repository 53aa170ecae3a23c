// Package services contains server-side business logic. This file implements
// UserService: registration, the two-phase SRP login with optional second
// factor, and issuing/refreshing JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/cryptox"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/auth"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/config"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/aliaskeeper/internal/srp"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type RegisterRequest struct {
	UserName           string
	Salt               string
	Verifier           string
	EncryptionType     string
	EncryptionSettings string
}

// LoginChallenge is the answer to login phase 1.
type LoginChallenge struct {
	Salt               string
	ServerEphemeral    string
	EncryptionType     string
	EncryptionSettings string
}

type ValidateRequest struct {
	UserName              string
	ClientPublicEphemeral string
	ClientSessionProof    string
	RememberMe            bool
}

// LoginResult is either a finished login (ServerSessionProof and Token set)
// or a request for the second factor.
type LoginResult struct {
	ServerSessionProof string
	Token              *TokenPair
	RequiresTwoFactor  bool
}

// UserService provides authentication-related operations.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	group       *srp.Group
	challenges  *challengeCache
	lockout     lockoutPolicy

	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	rememberMeValidityDuration   time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		logger:                       logger.With("module", "users"),
		group:                        srp.Default,
		challenges:                   newChallengeCache(cfg.SrpSessionValidityDuration, time.Minute),
		lockout:                      newLockoutPolicy(cfg.LockoutThreshold, cfg.LockoutWindow),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		rememberMeValidityDuration:   cfg.RememberMeRefreshTokenValidityDuration,
	}
}

// Close stops the challenge cache cleanup loop.
func (s *UserService) Close() {
	s.challenges.Stop()
}

// Register creates a new account from client-computed SRP values.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.UserName) == "" || !isHex(req.Salt) || !isHex(req.Verifier) {
		return nil, common.ErrorValidation
	}
	if err := cryptox.ValidateKdf(req.EncryptionType, req.EncryptionSettings); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	user := &models.User{
		UserName:           req.UserName,
		Salt:               req.Salt,
		Verifier:           req.Verifier,
		EncryptionType:     req.EncryptionType,
		EncryptionSettings: req.EncryptionSettings,
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// LoginInit starts an SRP exchange. Unknown users get a deterministic fake
// salt and a random ephemeral so the answer does not reveal whether the
// account exists.
func (s *UserService) LoginInit(ctx context.Context, userName string) (*LoginChallenge, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, userName)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "user lookup failed", "error", err)
			return nil, common.ErrorInternal
		}
		return s.fakeChallenge(userName)
	}

	eph, err := s.group.GenerateServerEphemeral(user.Verifier)
	if err != nil {
		s.logger.Error(ctx, "stored verifier is malformed", "user_id", user.ID)
		return nil, common.ErrorInternal
	}
	s.challenges.Put(userName, srpChallenge{
		UserID:       user.ID,
		Salt:         user.Salt,
		Verifier:     user.Verifier,
		ServerSecret: eph.Secret,
		ServerPublic: eph.Public,
	})

	return &LoginChallenge{
		Salt:               user.Salt,
		ServerEphemeral:    eph.Public,
		EncryptionType:     user.EncryptionType,
		EncryptionSettings: user.EncryptionSettings,
	}, nil
}

func (s *UserService) fakeChallenge(userName string) (*LoginChallenge, error) {
	salt := s.pseudoRandom("salt", userName)
	eph, err := s.group.GenerateServerEphemeral(s.pseudoRandom("verifier", userName))
	if err != nil {
		return nil, common.ErrorInternal
	}
	// Cached without a user id so phase 2 fails the same way as a wrong password.
	s.challenges.Put(userName, srpChallenge{Salt: salt, ServerSecret: eph.Secret, ServerPublic: eph.Public})

	kdf, settings := cryptox.DefaultKdf()
	return &LoginChallenge{Salt: salt, ServerEphemeral: eph.Public, EncryptionType: kdf, EncryptionSettings: settings}, nil
}

func (s *UserService) pseudoRandom(label, userName string) string {
	mac := hmac.New(sha256.New, s.jwtSecret)
	mac.Write([]byte(label + ":" + strings.ToLower(userName)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate checks the client proof. On success without a second factor it
// issues tokens; otherwise the challenge stays cached for the follow-up call.
func (s *UserService) Validate(ctx context.Context, req ValidateRequest) (*LoginResult, error) {
	ch, user, session, err := s.verifyProof(ctx, req)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled {
		return &LoginResult{RequiresTwoFactor: true}, nil
	}

	return s.completeLogin(ctx, req, ch, session)
}

// Validate2FA re-verifies the SRP proof and then the TOTP code.
func (s *UserService) Validate2FA(ctx context.Context, req ValidateRequest, code string) (*LoginResult, error) {
	ch, user, session, err := s.verifyProof(ctx, req)
	if err != nil {
		return nil, err
	}
	if !user.TwoFactorEnabled {
		return nil, common.ErrorValidation
	}

	err = s.guard(ctx, user.ID, models.CredentialTotp, func(context.Context, dbx.DBTX) (bool, error) {
		return s.lockout.validTotp(code, user.TotpSecret), nil
	})
	if err != nil {
		return nil, s.authError(ctx, user.ID, err)
	}

	return s.completeLogin(ctx, req, ch, session)
}

// ValidateRecoveryCode re-verifies the SRP proof and then consumes a
// single-use recovery code in the same transaction as the lockout counter.
func (s *UserService) ValidateRecoveryCode(ctx context.Context, req ValidateRequest, code string) (*LoginResult, error) {
	ch, _, session, err := s.verifyProof(ctx, req)
	if err != nil {
		return nil, err
	}

	hash := hashRecoveryCode(code)
	err = s.guard(ctx, ch.UserID, models.CredentialRecovery, func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return s.repomanager.RecoveryCodes(tx).Consume(ctx, ch.UserID, hash)
	})
	if err != nil {
		return nil, s.authError(ctx, ch.UserID, err)
	}
	s.logger.Warn(ctx, "recovery code used", "user_id", ch.UserID)

	return s.completeLogin(ctx, req, ch, session)
}

// verifyProof runs the password-class guarded SRP check against the user's
// pending challenges and returns the one the client answered. Challenges
// issued before the verifier last changed are ignored.
func (s *UserService) verifyProof(ctx context.Context, req ValidateRequest) (srpChallenge, *models.User, *srp.Session, error) {
	pending := s.challenges.Pending(req.UserName)
	if len(pending) == 0 {
		return srpChallenge{}, nil, nil, common.ErrLoginSessionExpired
	}
	userID := pending[0].UserID
	if userID == "" {
		s.challenges.Delete(req.UserName)
		return srpChallenge{}, nil, nil, common.ErrAuthenticationFailed
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "user lookup failed", "user_id", userID, "error", err)
		return srpChallenge{}, nil, nil, common.ErrorInternal
	}
	fresh := pending[:0]
	for _, ch := range pending {
		if ch.UserID == user.ID && ch.Verifier == user.Verifier {
			fresh = append(fresh, ch)
		}
	}
	if len(fresh) == 0 {
		s.challenges.Delete(req.UserName)
		return srpChallenge{}, nil, nil, common.ErrLoginSessionExpired
	}

	var (
		matched srpChallenge
		session *srp.Session
	)
	err = s.guard(ctx, user.ID, models.CredentialPassword, func(context.Context, dbx.DBTX) (bool, error) {
		for _, ch := range fresh {
			sess, err := s.group.DeriveServerSession(ch.ServerSecret, req.ClientPublicEphemeral,
				ch.Salt, req.UserName, ch.Verifier, req.ClientSessionProof)
			if err == nil {
				matched, session = ch, sess
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		if !errors.Is(err, common.ErrAccountLockedOut) {
			s.challenges.Delete(req.UserName)
		}
		return srpChallenge{}, nil, nil, s.authError(ctx, user.ID, err)
	}
	return matched, user, session, nil
}

// authError passes rejections through and hides everything else.
func (s *UserService) authError(ctx context.Context, userID string, err error) error {
	if errors.Is(err, common.ErrAuthenticationFailed) || errors.Is(err, common.ErrAccountLockedOut) {
		s.logger.Warn(ctx, "login rejected", "user_id", userID, "error", err)
		return err
	}
	s.logger.Error(ctx, "login check failed", "user_id", userID, "error", err)
	return common.ErrorInternal
}

func (s *UserService) completeLogin(ctx context.Context, req ValidateRequest, ch srpChallenge, session *srp.Session) (*LoginResult, error) {
	s.challenges.Remove(req.UserName, ch.ServerPublic)
	userID := ch.UserID

	validity := s.refreshTokenValidityDuration
	if req.RememberMe {
		validity = s.rememberMeValidityDuration
	}
	pair, err := s.generateTokenPair(ctx, userID, s.db, validity)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user logged in", "user_id", userID)
	return &LoginResult{ServerSessionProof: session.Proof, Token: pair}, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. Expired tokens yield ErrRefreshTokenExpired.
// A token can be exchanged once: a replay, or a token revoked by a password
// change, yields common.ErrorNotFound. The new refresh token lives at least
// as long as the old one had left, so remember-me sessions keep their
// lifetime.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	token, err := s.repomanager.RefreshTokens(s.db).Find(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if time.Until(token.Expires) <= 0 {
		return nil, common.ErrRefreshTokenExpired
	}

	var pair *TokenPair
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		// ChangePassword holds this lock while it revokes every session.
		if err := s.repomanager.Users(tx).LockForUpdate(ctx, token.UserID); err != nil {
			return fmt.Errorf("error locking user: %w", err)
		}
		consumed, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("error consuming refresh token: %w", err)
		}
		remaining := time.Until(consumed.Expires)
		if remaining <= 0 {
			return common.ErrRefreshTokenExpired
		}
		pair, err = s.generateTokenPair(ctx, consumed.UserID, tx, max(remaining, s.refreshTokenValidityDuration))
		return err
	}); err != nil {
		return nil, err
	}
	return pair, nil
}

// Revoke deletes a refresh token (logout). Unknown tokens are not an error.
func (s *UserService) Revoke(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// UserIDFromAccessToken verifies an access token.
func (s *UserService) UserIDFromAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX, validity time.Duration) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	refreshRepo := s.repomanager.RefreshTokens(tx)
	if err := refreshRepo.Create(ctx, userID, refresh, validity); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	_, err := hex.DecodeString(s)
	if err == nil {
		return true
	}
	// big.Int.Text(16) drops leading zeros, so odd lengths are legal.
	_, err = hex.DecodeString("0" + s)
	return err == nil
}
