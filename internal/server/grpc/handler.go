package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.AliasKeeperServer = (*GRPCServer)(nil)

// toStatus maps service errors to gRPC codes without leaking internals.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrAccountLockedOut):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrAuthenticationFailed):
		return status.Error(codes.Unauthenticated, common.ErrAuthenticationFailed.Error())
	case errors.Is(err, common.ErrLoginSessionExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, common.ErrorValidation.Error())
	case errors.Is(err, common.ErrRevisionConflict):
		return status.Error(codes.Aborted, common.ErrRevisionConflict.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, common.ErrorAlreadyExists.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	default:
		s.logger.Error(ctx, "call failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(context.Context, *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, services.RegisterRequest{
		UserName:           req.Username,
		Salt:               req.Salt,
		Verifier:           req.Verifier,
		EncryptionType:     req.EncryptionType,
		EncryptionSettings: req.EncryptionSettings,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterResponse{Id: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	ch, err := s.users.LoginInit(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{
		Salt:               ch.Salt,
		ServerEphemeral:    ch.ServerEphemeral,
		EncryptionType:     ch.EncryptionType,
		EncryptionSettings: ch.EncryptionSettings,
	}, nil
}

func toValidate(req *pb.ValidateRequest) services.ValidateRequest {
	return services.ValidateRequest{
		UserName:              req.Username,
		ClientPublicEphemeral: req.ClientPublicEphemeral,
		ClientSessionProof:    req.ClientSessionProof,
		RememberMe:            req.RememberMe,
	}
}

func (s *GRPCServer) validateResponse(ctx context.Context, res *services.LoginResult, err error) (*pb.ValidateResponse, error) {
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.ValidateResponse{ServerSessionProof: res.ServerSessionProof, RequiresTwoFactor: res.RequiresTwoFactor}
	if res.Token != nil {
		out.AccessToken = res.Token.AccessToken
		out.RefreshToken = res.Token.RefreshToken
	}
	return out, nil
}

func (s *GRPCServer) Validate(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	res, err := s.users.Validate(ctx, toValidate(req))
	return s.validateResponse(ctx, res, err)
}

func (s *GRPCServer) Validate2FA(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	res, err := s.users.Validate2FA(ctx, toValidate(req), req.Code)
	return s.validateResponse(ctx, res, err)
}

func (s *GRPCServer) ValidateRecoveryCode(ctx context.Context, req *pb.ValidateRequest) (*pb.ValidateResponse, error) {
	res, err := s.users.ValidateRecoveryCode(ctx, toValidate(req), req.Code)
	return s.validateResponse(ctx, res, err)
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (s *GRPCServer) Revoke(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.Empty, error) {
	if err := s.users.Revoke(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetVault(ctx context.Context, _ *pb.Empty) (*pb.VaultResponse, error) {
	v, err := s.vaults.GetVault(ctx, userIDFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.VaultResponse{
		Vault:               v.Vault,
		Version:             v.Version,
		VaultRevisionNumber: v.RevisionNumber,
		EncryptionType:      v.EncryptionType,
		EncryptionSettings:  v.EncryptionSettings,
		Salt:                v.Salt,
		PublicEmailDomains:  v.PublicEmailDomains,
		PrivateEmailDomains: v.PrivateEmailDomains,
	}, nil
}

func (s *GRPCServer) SaveVault(ctx context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error) {
	in := services.SaveVaultRequest{
		Blob:                  req.Blob,
		Version:               req.Version,
		CurrentRevisionNumber: req.CurrentRevisionNumber,
		CredentialsCount:      int(req.CredentialsCount),
		EmailAddressList:      req.EmailAddressList,
	}
	if k := req.EncryptionPublicKey; k != nil {
		in.EncryptionPublicKey = &services.PublicKeyUpload{ID: k.Id, PublicKey: k.PublicKey}
	}
	res, err := s.vaults.SaveVault(ctx, userIDFrom(ctx), in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SaveVaultResponse{NewRevisionNumber: res.NewRevisionNumber, RejectedAddresses: res.RejectedAddresses}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.SaveVaultResponse, error) {
	rev, err := s.vaults.ChangePassword(ctx, userIDFrom(ctx), services.ChangePasswordRequest{
		Salt:                  req.Salt,
		Verifier:              req.Verifier,
		EncryptionType:        req.EncryptionType,
		EncryptionSettings:    req.EncryptionSettings,
		Blob:                  req.Blob,
		Version:               req.Version,
		CurrentRevisionNumber: req.CurrentRevisionNumber,
		CredentialsCount:      int(req.CredentialsCount),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SaveVaultResponse{NewRevisionNumber: rev}, nil
}

func (s *GRPCServer) ListEmails(ctx context.Context, _ *pb.Empty) (*pb.ListEmailsResponse, error) {
	list, err := s.emails.List(ctx, userIDFrom(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &pb.ListEmailsResponse{Emails: make([]*pb.Email, 0, len(list))}
	for _, e := range list {
		m := &pb.Email{
			Id:                    e.ID,
			EncryptionKeyId:       e.EncryptionKeyID,
			EncryptedSymmetricKey: e.EncryptedSymmetricKey,
			From:                  e.From,
			To:                    e.To,
			Subject:               e.Subject,
			MessageHtml:           e.MessageHTML,
			MessagePlain:          e.MessagePlain,
			MessagePreview:        e.MessagePreview,
			Headers:               e.Headers,
			DateReceived:          timestamppb.New(e.DateReceived),
		}
		for _, a := range e.Attachments {
			m.Attachments = append(m.Attachments, &pb.Attachment{Id: a.ID, Filename: a.Filename, MimeType: a.MimeType, Filesize: a.Filesize})
		}
		out.Emails = append(out.Emails, m)
	}
	return out, nil
}

func (s *GRPCServer) DeleteEmail(ctx context.Context, req *pb.EmailRequest) (*pb.Empty, error) {
	if err := s.emails.Delete(ctx, userIDFrom(ctx), req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) AttachmentURL(ctx context.Context, req *pb.AttachmentURLRequest) (*pb.AttachmentURLResponse, error) {
	url, err := s.emails.AttachmentURL(ctx, userIDFrom(ctx), req.EmailId, req.AttachmentId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AttachmentURLResponse{Url: url}, nil
}
