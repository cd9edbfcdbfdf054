package adapter

import (
	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
)

// NewServerAdapter picks the transport from cfg: gRPC when a gRPC address is
// configured, HTTP otherwise.
func NewServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.GRPCAddress != "" {
		logger.Debug().Str("address", cfg.GRPCAddress).Msg("using gRPC server adapter")
		return NewGRPCServerAdapter(cfg, logger)
	}

	logger.Debug().Str("address", cfg.HTTPAddress).Msg("using HTTP server adapter")
	return NewHTTPServerAdapter(cfg, logger)
}
