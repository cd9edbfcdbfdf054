package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/NiharGandhi/pent/internal/config"
	myGRPC "github.com/NiharGandhi/pent/internal/handler/grpc"
	"github.com/NiharGandhi/pent/internal/logger"
)

type grpcServer struct {
	address  string
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.Interceptors()...))
	myGRPC.RegisterCredentialsServer(srv, handler)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  srv,
		logger:  logger,
	}
}

func (g *grpcServer) name() string { return "grpc" }

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}
	g.listener = lis
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// shutdown waits for in-flight calls and falls back to Stop when ctx ends
// first.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	defer func() {
		if g.listener != nil {
			_ = g.listener.Close()
		}
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("grpc shutdown: %w", ctx.Err())
	}
}
