package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/handler"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/workers"
)

// shutdownTimeout bounds how long in-flight requests may take after a stop
// signal.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	// ready is closed once every transport is listening.
	ready     chan struct{}
	readyOnce sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, backgroundWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: backgroundWorkers, ready: make(chan struct{}), logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersToRun
	}

	for i, t := range transports {
		if err := t.listen(); err != nil {
			for _, started := range transports[:i] {
				_ = started.shutdown(context.Background())
			}
			return err
		}
	}

	if s.ready != nil {
		s.readyOnce.Do(func() { close(s.ready) })
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	errCh := make(chan error, len(transports))

	for _, t := range transports {
		wg.Add(1)
		go func(t transport) {
			defer wg.Done()
			s.logger.Info().Str("transport", t.name()).Msg("launching server")
			if err := t.serve(); err != nil {
				errCh <- err
				cancel()
			}
		}(t)
	}

	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	var errs []error
	for _, t := range transports {
		if err := t.shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}

	wg.Wait()
	close(errCh)
	for err := range errCh {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, t := range s.transports() {
		if err := t.shutdown(ctx); err != nil {
			s.logger.Err(err).Str("transport", t.name()).Msg("shutdown failed")
		}
	}
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}
