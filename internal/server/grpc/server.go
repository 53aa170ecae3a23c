// Package grpc serves the account, vault and inbox operations of the
// AliasKeeper service, next to the standard health service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/aliaskeeper/internal/logging"
	pb "github.com/dmitrijs2005/aliaskeeper/internal/proto"
	"github.com/dmitrijs2005/aliaskeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	pb.UnimplementedAliasKeeperServer
	address string
	users   services.UserAPI
	vaults  services.VaultAPI
	emails  services.EmailAPI
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us services.UserAPI, vs services.VaultAPI, es services.EmailAPI) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		vaults:  vs,
		emails:  es,
	}
}

// NewServer builds a grpc.Server with the interceptor chain, the
// AliasKeeper service and the health service registered.
func (s *GRPCServer) NewServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterAliasKeeperServer(srv, s)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus(pb.AliasKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return srv, hs
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv, hs := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
