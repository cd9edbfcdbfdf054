package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/handler/grpc"
	"github.com/NiharGandhi/pent/internal/handler/http"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/internal/ratelimit"
	"github.com/NiharGandhi/pent/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every transport that has an address in
// cfg. Both transports share limiter, so a client IP has one budget across
// REST and gRPC.
func NewHandlers(services *service.Services, cfg config.Server, limiter *ratelimit.Limiter, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, limiter, collector, gatherer, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, limiter, collector, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
