package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves until a stop signal arrives and then shuts down.
	RunServer()

	// Run serves until ctx is done or a transport fails. It returns after
	// every transport and worker has stopped.
	Run(ctx context.Context) error

	// Shutdown gracefully stops all transports.
	Shutdown()
}

// transport is one listening server.
type transport interface {
	name() string
	listen() error
	serve() error
	shutdown(ctx context.Context) error
}
