package http

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/internal/ratelimit"
	"github.com/NiharGandhi/pent/internal/service"
)

// maxRequestBodyBytes caps the size of JSON request bodies.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	limiter  *ratelimit.Limiter
	metrics  metrics.MetricsCollector
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the REST handler. limiter and gatherer may be nil:
// a nil limiter disables rate limiting and a nil gatherer hides /metrics.
func NewHandler(services *service.Services, cfg config.Server, limiter *ratelimit.Limiter, collector metrics.MetricsCollector, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if collector == nil {
		collector = metrics.Nop{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		limiter:        limiter,
		metrics:        collector,
		gatherer:       gatherer,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
