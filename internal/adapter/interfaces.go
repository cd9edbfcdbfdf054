// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the pent server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. Two implementations are shipped:
// HTTP/REST over resty ([NewHTTPServerAdapter]) and gRPC with the JSON codec
// ([NewGRPCServerAdapter]).
//
// Both implementations report failures with the sentinel values defined in
// errors.go so that callers can use [errors.Is] regardless of the transport
// (e.g. [ErrConflict] for HTTP 409 and codes.AlreadyExists).
package adapter

import (
	"context"

	"github.com/NiharGandhi/pent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the pent
// server.
type ServerAdapter interface {
	// Register sends a registration request and returns the created public
	// profile.
	Register(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// Login sends username and password and returns the public profile of
	// the authenticated user.
	Login(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// LookupUser fetches the public profile of userID.
	LookupUser(ctx context.Context, userID string) (models.PublicUser, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Close releases transport resources.
	Close() error
}
