// Package grpc implements the gRPC transport of the credential service.
//
// Messages are the JSON-encoded models types; the service descriptor is
// written by hand against the codec in the rpc package.
package grpc

import (
	"context"

	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/internal/ratelimit"
	"github.com/NiharGandhi/pent/internal/rpc"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/models"
)

// Handler is the root gRPC transport handler.
//
// It implements [CredentialsServer] on top of the service layer and owns the
// unary interceptors used by the server.
type Handler struct {
	services *service.Services

	limiter *ratelimit.Limiter
	metrics metrics.MetricsCollector

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. A nil limiter disables rate limiting.
func NewHandler(services *service.Services, limiter *ratelimit.Limiter, collector metrics.MetricsCollector, logger *logger.Logger) *Handler {
	if collector == nil {
		collector = metrics.Nop{}
	}

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		limiter:  limiter,
		metrics:  collector,
		logger:   logger,
	}
}

var _ CredentialsServer = (*Handler)(nil)

func (h *Handler) Register(ctx context.Context, in *models.Credentials) (*models.PublicUser, error) {
	user, err := h.services.CredentialService.Register(ctx, *in)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &user, nil
}

func (h *Handler) Authenticate(ctx context.Context, in *models.Credentials) (*models.PublicUser, error) {
	user, err := h.services.CredentialService.Authenticate(ctx, *in)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &user, nil
}

func (h *Handler) LookupByID(ctx context.Context, in *models.LookupRequest) (*models.PublicUser, error) {
	user, err := h.services.CredentialService.LookupByID(ctx, in.UserID)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &user, nil
}

func (h *Handler) Version(ctx context.Context, _ *rpc.Empty) (*models.VersionResponse, error) {
	return &models.VersionResponse{Version: h.services.AppInfoService.GetAppVersion(ctx)}, nil
}
