package client

import (
	"context"

	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
)

// Factor selects which validation call completes a login.
type Factor int

const (
	FactorPassword Factor = iota
	FactorTotp
	FactorRecoveryCode
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, req *pb.RegisterRequest) error
	Login(ctx context.Context, username string) (*pb.LoginResponse, error)
	// Validate sends the SRP proof. On success with tokens the client keeps
	// them for later calls.
	Validate(ctx context.Context, req *pb.ValidateRequest, factor Factor) (*pb.ValidateResponse, error)
	Logout(ctx context.Context) error
	GetVault(ctx context.Context) (*pb.VaultResponse, error)
	SaveVault(ctx context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error)
	ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.SaveVaultResponse, error)
	ListEmails(ctx context.Context) ([]*pb.Email, error)
	DeleteEmail(ctx context.Context, id string) error
	AttachmentURL(ctx context.Context, emailID, attachmentID string) (string, error)
}
