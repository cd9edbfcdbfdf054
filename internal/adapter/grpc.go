package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/rpc"
	"github.com/NiharGandhi/pent/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type grpcServerAdapter struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCServerAdapter constructs a gRPC implementation of [ServerAdapter]
// targeting adapterCfg.GRPCAddress. Messages use the JSON codec from the rpc
// package. The connection is established lazily on the first call.
func NewGRPCServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (ServerAdapter, error) {
	address := strings.TrimSpace(adapterCfg.GRPCAddress)
	if address == "" {
		return nil, ErrNoAddress
	}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(address, opts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client: %w", err)
	}

	return &grpcServerAdapter{conn: conn, timeout: adapterCfg.RequestTimeout, logger: logger}, nil
}

func (g *grpcServerAdapter) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	var user models.PublicUser
	if err := g.invoke(ctx, rpc.MethodRegister, &c, &user); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (g *grpcServerAdapter) Login(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	req := models.Credentials{Username: c.Username, Password: c.Password}

	var user models.PublicUser
	if err := g.invoke(ctx, rpc.MethodAuthenticate, &req, &user); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (g *grpcServerAdapter) LookupUser(ctx context.Context, userID string) (models.PublicUser, error) {
	var user models.PublicUser
	if err := g.invoke(ctx, rpc.MethodLookupByID, &models.LookupRequest{UserID: userID}, &user); err != nil {
		return models.PublicUser{}, err
	}

	return user, nil
}

func (g *grpcServerAdapter) Version(ctx context.Context) (string, error) {
	var resp models.VersionResponse
	if err := g.invoke(ctx, rpc.MethodVersion, &rpc.Empty{}, &resp); err != nil {
		return "", err
	}

	return resp.Version, nil
}

func (g *grpcServerAdapter) Close() error {
	return g.conn.Close()
}

func (g *grpcServerAdapter) invoke(ctx context.Context, method string, req, reply any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if err := g.conn.Invoke(ctx, rpc.FullMethod(method), req, reply); err != nil {
		return mapGRPCError(err)
	}

	return nil
}
