package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/NiharGandhi/pent/internal/adapter"
	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/mock"
	"github.com/NiharGandhi/pent/internal/ratelimit"
	"github.com/NiharGandhi/pent/internal/rpc"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/models"
)

const testUserID = "0190f5b2-7c4d-7a3e-9b1f-2d6c8e4a5b10"

var testUser = models.PublicUser{
	UserID:    testUserID,
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

type testEnv struct {
	credentials *mock.MockCredentialService
	appInfo     *mock.MockAppInfoService
	dialer      func(context.Context, string) (net.Conn, error)
}

// startServer serves a Handler with its interceptors over bufconn.
func startServer(t *testing.T, limiter *ratelimit.Limiter) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := testEnv{
		credentials: mock.NewMockCredentialService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(
		&service.Services{CredentialService: env.credentials, AppInfoService: env.appInfo},
		limiter, nil, logger.Nop(),
	)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.Interceptors()...))
	RegisterCredentialsServer(srv, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	env.dialer = func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	return env
}

func (e testEnv) client(t *testing.T) adapter.ServerAdapter {
	t.Helper()

	a, err := adapter.NewGRPCServerAdapter(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet", RequestTimeout: 5 * time.Second},
		logger.Nop(),
		grpc.WithContextDialer(e.dialer),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func (e testEnv) conn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(e.dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestRegister_OverGRPC(t *testing.T) {
	env := startServer(t, nil)
	in := models.Credentials{Username: "alice", Email: "alice@example.com", Password: "pw123"}
	env.credentials.EXPECT().Register(gomock.Any(), in).Return(testUser, nil)

	got, err := env.client(t).Register(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, testUser, got)
}

func TestAuthenticate_OverGRPC(t *testing.T) {
	env := startServer(t, nil)
	env.credentials.EXPECT().
		Authenticate(gomock.Any(), models.Credentials{Username: "alice", Password: "pw123"}).
		Return(testUser, nil)

	got, err := env.client(t).Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestLookupByID_OverGRPC(t *testing.T) {
	env := startServer(t, nil)
	env.credentials.EXPECT().LookupByID(gomock.Any(), testUserID).Return(testUser, nil)

	got, err := env.client(t).LookupUser(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUser, got)
}

func TestVersion_OverGRPC(t *testing.T) {
	env := startServer(t, nil)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.2.3")

	got, err := env.client(t).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

func TestErrorsMapToCodes_OverGRPC(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
		wantErr  error
	}{
		{"validation", fmt.Errorf("%w: username is required", service.ErrValidation), codes.InvalidArgument, "validation failed: username is required", adapter.ErrBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, codes.Unauthenticated, app.MsgInvalidCredentials, adapter.ErrUnauthorized},
		{"storage", fmt.Errorf("%w: disk full", service.ErrStorage), codes.Internal, app.MsgInternalServerError, adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := startServer(t, nil)
			env.credentials.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, tt.err).Times(2)

			// raw call exposes the status
			var out models.PublicUser
			err := env.conn(t).Invoke(context.Background(), rpc.FullMethod(rpc.MethodAuthenticate),
				&models.Credentials{Username: "alice", Password: "x"}, &out)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
			assert.NotContains(t, st.Message(), "disk full")

			// the client adapter restores the transport-independent error
			_, err = env.client(t).Login(context.Background(), models.Credentials{Username: "alice", Password: "x"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateIsAlreadyExists(t *testing.T) {
	env := startServer(t, nil)
	env.credentials.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.PublicUser{}, service.ErrDuplicateUsername)

	_, err := env.client(t).Register(context.Background(), models.Credentials{Username: "alice", Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestLookupByID_NotFound(t *testing.T) {
	env := startServer(t, nil)
	env.credentials.EXPECT().LookupByID(gomock.Any(), testUserID).Return(models.PublicUser{}, service.ErrNotFound)

	_, err := env.client(t).LookupUser(context.Background(), testUserID)

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestCodeFromError(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, codeFromError(fmt.Errorf("x: %w", service.ErrValidation)))
	assert.Equal(t, codes.AlreadyExists, codeFromError(service.ErrDuplicateUsername))
	assert.Equal(t, codes.Unauthenticated, codeFromError(service.ErrInvalidCredentials))
	assert.Equal(t, codes.NotFound, codeFromError(service.ErrNotFound))
	assert.Equal(t, codes.Internal, codeFromError(service.ErrStorage))
	assert.Equal(t, codes.Internal, codeFromError(fmt.Errorf("boom")))
}

func TestTraceIDHeader(t *testing.T) {
	env := startServer(t, nil)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1").Times(2)
	conn := env.conn(t)

	t.Run("client trace id is echoed", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(), traceIDKey, "trace-42")
		var header metadata.MD
		var out models.VersionResponse

		err := conn.Invoke(ctx, rpc.FullMethod(rpc.MethodVersion), &rpc.Empty{}, &out, grpc.Header(&header))

		require.NoError(t, err)
		assert.Equal(t, []string{"trace-42"}, header.Get(traceIDKey))
	})

	t.Run("missing trace id is generated", func(t *testing.T) {
		var header metadata.MD
		var out models.VersionResponse

		err := conn.Invoke(context.Background(), rpc.FullMethod(rpc.MethodVersion), &rpc.Empty{}, &out, grpc.Header(&header))

		require.NoError(t, err)
		require.Len(t, header.Get(traceIDKey), 1)
		assert.NotEmpty(t, header.Get(traceIDKey)[0])
	})
}
