package services

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/dbx"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "aliaskeeper"

// TwoFactorSetup is the enrolment material shown to the user once.
type TwoFactorSetup struct {
	Secret string
	URL    string
}

// SetupTwoFactor stores a fresh, not yet enabled TOTP secret.
func (s *UserService) SetupTwoFactor(ctx context.Context, userID string) (*TwoFactorSetup, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled {
		return nil, common.ErrorAlreadyExists
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.UserName,
		Period:      totpOpts.Period,
		Digits:      totpOpts.Digits,
		Algorithm:   totpOpts.Algorithm,
	})
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := repo.SetTwoFactor(ctx, userID, false, key.Secret()); err != nil {
		return nil, err
	}
	return &TwoFactorSetup{Secret: key.Secret(), URL: key.URL()}, nil
}

// EnableTwoFactor confirms the pending secret with a code and returns a new
// set of recovery codes. Only their hashes are stored.
func (s *UserService) EnableTwoFactor(ctx context.Context, userID, code string) ([]string, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.TwoFactorEnabled || user.TotpSecret == "" {
		return nil, common.ErrorValidation
	}

	if err := s.guard(ctx, userID, models.CredentialTotp, func(context.Context, dbx.DBTX) (bool, error) {
		return s.lockout.validTotp(code, user.TotpSecret), nil
	}); err != nil {
		return nil, s.authError(ctx, userID, err)
	}

	codes, hashes := generateRecoveryCodes()
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).SetTwoFactor(ctx, userID, true, user.TotpSecret); err != nil {
			return err
		}
		return s.repomanager.RecoveryCodes(tx).ReplaceAll(ctx, userID, hashes)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "two factor enabled", "user_id", userID)
	return codes, nil
}

// DisableTwoFactor requires a valid current code.
func (s *UserService) DisableTwoFactor(ctx context.Context, userID, code string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.TwoFactorEnabled {
		return common.ErrorValidation
	}

	if err := s.guard(ctx, userID, models.CredentialTotp, func(context.Context, dbx.DBTX) (bool, error) {
		return s.lockout.validTotp(code, user.TotpSecret), nil
	}); err != nil {
		return s.authError(ctx, userID, err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).SetTwoFactor(ctx, userID, false, ""); err != nil {
			return err
		}
		return s.repomanager.RecoveryCodes(tx).ReplaceAll(ctx, userID, nil)
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "two factor disabled", "user_id", userID)
	return nil
}
