package services

import (
	"context"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

type lockoutPolicy struct {
	threshold int
	window    time.Duration
	now       func() time.Time
}

func newLockoutPolicy(threshold int, window time.Duration) lockoutPolicy {
	if threshold <= 0 {
		threshold = common.DefaultLockoutThreshold
	}
	if window <= 0 {
		window = common.DefaultLockoutWindow
	}
	return lockoutPolicy{threshold: threshold, window: window, now: time.Now}
}

// expire clears a lapsed lock or a stale failure streak.
func (p lockoutPolicy) expire(a *models.AuthAttempt, now time.Time) bool {
	switch {
	case !a.LockedUntil.IsZero() && !now.Before(a.LockedUntil):
	case a.FailedCount > 0 && a.LockedUntil.IsZero() && now.Sub(a.UpdatedAt) > p.window:
	default:
		return false
	}
	a.FailedCount = 0
	a.LockedUntil = time.Time{}
	return true
}

func (p lockoutPolicy) validTotp(code, secret string) bool {
	if secret == "" {
		return false
	}
	ok, err := totp.ValidateCustom(strings.TrimSpace(code), secret, p.now().UTC(), totpOpts)
	return err == nil && ok
}

// guard runs check for one credential class of userID with the class counter
// row locked, so parallel attempts are counted one after another. A failed
// check is committed and reported as ErrAuthenticationFailed; the attempt
// that reaches the threshold sets the lock, later attempts get a
// *common.LockedOutError until it lapses.
func (s *UserService) guard(ctx context.Context, userID string, class models.CredentialClass,
	check func(ctx context.Context, tx dbx.DBTX) (bool, error)) error {

	var outcome error
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.AuthAttempts(tx)
		a, err := repo.GetForUpdate(ctx, userID, class)
		if err != nil {
			return err
		}

		now := s.lockout.now()
		if now.Before(a.LockedUntil) {
			outcome = &common.LockedOutError{Remaining: a.LockedUntil.Sub(now)}
			return nil
		}
		dirty := s.lockout.expire(a, now)

		ok, err := check(ctx, tx)
		if err != nil {
			return err
		}
		if ok {
			if a.FailedCount == 0 && !dirty {
				return nil
			}
			a.FailedCount = 0
			a.LockedUntil = time.Time{}
			return repo.Save(ctx, a)
		}

		a.FailedCount++
		if a.FailedCount >= s.lockout.threshold {
			a.LockedUntil = now.Add(s.lockout.window)
		}
		outcome = common.ErrAuthenticationFailed
		return repo.Save(ctx, a)
	})
	if err != nil {
		return fmt.Errorf("lockout %s: %w", class, err)
	}
	return outcome
}

const recoveryCodeCount = 10

// generateRecoveryCodes returns codes formatted as XXXXX-XXXXX together
// with their storage hashes.
func generateRecoveryCodes() (codes, hashes []string) {
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	for range recoveryCodeCount {
		raw := enc.EncodeToString(common.GenerateRandByteArray(7))[:10]
		code := raw[:5] + "-" + raw[5:]
		codes = append(codes, code)
		hashes = append(hashes, hashRecoveryCode(code))
	}
	return codes, hashes
}

func hashRecoveryCode(code string) string {
	norm := strings.ToUpper(strings.NewReplacer("-", "", " ", "").Replace(code))
	sum := sha256.Sum256([]byte(norm))
	return hex.EncodeToString(sum[:])
}
