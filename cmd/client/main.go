package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/NiharGandhi/pent/internal/adapter"
	"github.com/NiharGandhi/pent/internal/client"
	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("pent-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	args := flag.Args()
	if len(args) > 0 && args[0] == "build-info" {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
		return
	}

	serverAdapter, err := adapter.NewServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}
	defer serverAdapter.Close()

	services, err := service.NewClientServices(serverAdapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client services")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(services, os.Stdout, client.NewStdinPasswordReader(os.Stderr), log)
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		_ = serverAdapter.Close()
		os.Exit(1)
	}
}
