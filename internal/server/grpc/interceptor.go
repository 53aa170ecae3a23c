package grpc

import (
	"context"

	"github.com/dmitrijs2005/aliaskeeper/internal/common"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// protectedMethods need a valid access token in the access_token metadata.
var protectedMethods = map[string]bool{
	pb.AliasKeeper_GetVault_FullMethodName:       true,
	pb.AliasKeeper_SaveVault_FullMethodName:      true,
	pb.AliasKeeper_ChangePassword_FullMethodName: true,
	pb.AliasKeeper_ListEmails_FullMethodName:     true,
	pb.AliasKeeper_DeleteEmail_FullMethodName:    true,
	pb.AliasKeeper_AttachmentURL_FullMethodName:  true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !protectedMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.users.UserIDFromAccessToken(accessToken)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
