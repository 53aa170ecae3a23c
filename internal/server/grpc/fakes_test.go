package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	"github.com/dmitrijs2005/aliaskeeper/internal/envelope"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/auth"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/models"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
)

const testSecret = "super-secret"

type fakeUser struct {
	regErr      error
	validateErr error
	refreshErr  error
	lastCode    string
}

func (f *fakeUser) Register(_ context.Context, req services.RegisterRequest) (*models.User, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{ID: "u1", UserName: req.UserName}, nil
}

func (f *fakeUser) LoginInit(context.Context, string) (*services.LoginChallenge, error) {
	return &services.LoginChallenge{Salt: "ab", ServerEphemeral: "cd", EncryptionType: "Argon2Id", EncryptionSettings: "{}"}, nil
}

func (f *fakeUser) result() (*services.LoginResult, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &services.LoginResult{ServerSessionProof: "m2", Token: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}, nil
}

func (f *fakeUser) Validate(context.Context, services.ValidateRequest) (*services.LoginResult, error) {
	return f.result()
}

func (f *fakeUser) Validate2FA(_ context.Context, _ services.ValidateRequest, code string) (*services.LoginResult, error) {
	f.lastCode = code
	return f.result()
}

func (f *fakeUser) ValidateRecoveryCode(_ context.Context, _ services.ValidateRequest, code string) (*services.LoginResult, error) {
	f.lastCode = code
	return f.result()
}

func (f *fakeUser) RefreshToken(context.Context, string) (*services.TokenPair, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &services.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
}

func (f *fakeUser) Revoke(context.Context, string) error { return nil }

func (f *fakeUser) UserIDFromAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, []byte(testSecret))
}

func (f *fakeUser) SetupTwoFactor(context.Context, string) (*services.TwoFactorSetup, error) {
	return nil, common.ErrorInternal
}

func (f *fakeUser) EnableTwoFactor(context.Context, string, string) ([]string, error) {
	return nil, common.ErrorInternal
}

func (f *fakeUser) DisableTwoFactor(context.Context, string, string) error {
	return common.ErrorInternal
}

type fakeVault struct {
	savedBy string
	saved   services.SaveVaultRequest
	changed services.ChangePasswordRequest
	saveErr error
}

func (f *fakeVault) GetVault(_ context.Context, userID string) (*services.VaultResponse, error) {
	return &services.VaultResponse{Vault: "blob-of-" + userID, RevisionNumber: 2}, nil
}

func (f *fakeVault) SaveVault(_ context.Context, userID string, req services.SaveVaultRequest) (*services.SaveVaultResult, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.savedBy = userID
	f.saved = req
	return &services.SaveVaultResult{NewRevisionNumber: req.CurrentRevisionNumber + 1}, nil
}

func (f *fakeVault) ChangePassword(_ context.Context, _ string, req services.ChangePasswordRequest) (int64, error) {
	f.changed = req
	return req.CurrentRevisionNumber + 1, nil
}

var fakeReceived = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

type fakeEmail struct{}

func (fakeEmail) Ingest(context.Context, envelope.InboundEmail) (string, error) { return "", nil }

func (fakeEmail) List(context.Context, string) ([]*envelope.EncryptedEmail, error) {
	return []*envelope.EncryptedEmail{{
		ID:           "e1",
		DateReceived: fakeReceived,
		Attachments:  []envelope.EncryptedAttachment{{ID: "a1"}},
	}}, nil
}

func (fakeEmail) Get(context.Context, string, string) (*envelope.EncryptedEmail, error) {
	return nil, common.ErrorNotFound
}

func (fakeEmail) Delete(_ context.Context, _, id string) error {
	if id != "e1" {
		return common.ErrorNotFound
	}
	return nil
}

func (fakeEmail) AttachmentURL(_ context.Context, userID, emailID, attachmentID string) (string, error) {
	return "memory://users/" + userID + "/" + emailID + "/" + attachmentID, nil
}
