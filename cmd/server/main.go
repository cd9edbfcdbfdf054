package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/handler"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/internal/ratelimit"
	"github.com/NiharGandhi/pent/internal/server"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/internal/store"
	"github.com/NiharGandhi/pent/internal/workers"
	"github.com/NiharGandhi/pent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("pent-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("password_hash_algorithm", cfg.App.PasswordHashAlgorithm).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	services, err := service.NewServices(storages, cfg.App, buildInfo, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := ratelimit.New(cfg.Server.AuthRateLimit, cfg.Server.AuthRateBurst, ratelimit.DefaultIdleTTL)

	handlers, err := handler.NewHandlers(services, cfg.Server, limiter, collector, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(workers.NewRateLimitCleanupWorker(limiter, log))

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
