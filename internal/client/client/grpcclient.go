package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const loginTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AliasKeeperClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
}

// accessTokenInterceptor attaches the access token and, when the server
// reports it expired, rotates the token pair once and retries the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewAliasKeeperClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAliasKeeperClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, req *pb.RegisterRequest) error {
	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, username string) (*pb.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, loginTimeout)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Validate(ctx context.Context, req *pb.ValidateRequest, factor Factor) (*pb.ValidateResponse, error) {
	call := s.client.Validate
	switch factor {
	case FactorTotp:
		call = s.client.Validate2FA
	case FactorRecoveryCode:
		call = s.client.ValidateRecoveryCode
	}

	resp, err := call(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.AccessToken != "" {
		s.setTokens(resp.AccessToken, resp.RefreshToken)
	}
	return resp, nil
}

// Logout revokes the refresh token on the server and forgets both tokens.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	s.setTokens("", "")
	if refresh == "" {
		return nil
	}
	if _, err := s.client.Revoke(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetVault(ctx context.Context) (*pb.VaultResponse, error) {
	resp, err := s.client.GetVault(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) SaveVault(ctx context.Context, req *pb.SaveVaultRequest) (*pb.SaveVaultResponse, error) {
	resp, err := s.client.SaveVault(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.SaveVaultResponse, error) {
	resp, err := s.client.ChangePassword(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListEmails(ctx context.Context) ([]*pb.Email, error) {
	resp, err := s.client.ListEmails(ctx, &pb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetEmails(), nil
}

func (s *GRPCClient) DeleteEmail(ctx context.Context, id string) error {
	if _, err := s.client.DeleteEmail(ctx, &pb.EmailRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) AttachmentURL(ctx context.Context, emailID, attachmentID string) (string, error) {
	resp, err := s.client.AttachmentURL(ctx, &pb.AttachmentURLRequest{EmailId: emailID, AttachmentId: attachmentID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}

// mapError turns gRPC statuses back into the shared sentinel errors.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated:
		switch st.Message() {
		case common.ErrAuthenticationFailed.Error():
			return common.ErrAuthenticationFailed
		case common.ErrLoginSessionExpired.Error():
			return common.ErrLoginSessionExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.ResourceExhausted:
		return lockedOut(st.Message())
	case codes.Aborted:
		return common.ErrRevisionConflict
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.InvalidArgument:
		return common.ErrorValidation
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// lockedOut rebuilds the lockout error from the server message, which only
// carries whole minutes.
func lockedOut(msg string) error {
	var minutes int
	if _, err := fmt.Sscanf(msg, "account locked out, try again in %d", &minutes); err != nil || minutes < 1 {
		minutes = 1
	}
	return &common.LockedOutError{Remaining: time.Duration(minutes) * time.Minute}
}
