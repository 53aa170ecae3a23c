package services

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
)

// UserAPI is the account surface shared by the HTTP and gRPC transports.
type UserAPI interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	LoginInit(ctx context.Context, userName string) (*LoginChallenge, error)
	Validate(ctx context.Context, req ValidateRequest) (*LoginResult, error)
	Validate2FA(ctx context.Context, req ValidateRequest, code string) (*LoginResult, error)
	ValidateRecoveryCode(ctx context.Context, req ValidateRequest, code string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Revoke(ctx context.Context, refreshToken string) error
	UserIDFromAccessToken(token string) (string, error)
	SetupTwoFactor(ctx context.Context, userID string) (*TwoFactorSetup, error)
	EnableTwoFactor(ctx context.Context, userID, code string) ([]string, error)
	DisableTwoFactor(ctx context.Context, userID, code string) error
}

type VaultAPI interface {
	GetVault(ctx context.Context, userID string) (*VaultResponse, error)
	SaveVault(ctx context.Context, userID string, req SaveVaultRequest) (*SaveVaultResult, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (int64, error)
}

type EmailAPI interface {
	Ingest(ctx context.Context, msg envelope.InboundEmail) (string, error)
	List(ctx context.Context, userID string) ([]*envelope.EncryptedEmail, error)
	Get(ctx context.Context, userID, id string) (*envelope.EncryptedEmail, error)
	Delete(ctx context.Context, userID, id string) error
	AttachmentURL(ctx context.Context, userID, emailID, attachmentID string) (string, error)
}

var (
	_ UserAPI  = (*UserService)(nil)
	_ VaultAPI = (*VaultService)(nil)
	_ EmailAPI = (*EmailService)(nil)
)
