package service

import (
	"context"

	"github.com/NiharGandhi/pent/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the client-side view of the credential API. It
// talks to the server through an adapter and returns the same typed errors
// as [CredentialService], so the CLI does not depend on the transport.
type ClientAuthService interface {
	// Register creates an account on the server.
	Register(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// Login checks the credentials on the server and returns the profile.
	Login(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// LookupUser fetches the public profile of userID.
	LookupUser(ctx context.Context, userID string) (models.PublicUser, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
