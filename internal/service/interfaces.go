package service

import (
	"context"

	"github.com/NiharGandhi/pent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=CredentialServiceWrapper

// CredentialService owns the account lifecycle: registration, password
// verification and lookup of public profiles.
//
// Every method returns [models.PublicUser], which has no digest field.
// Failures are reported with the sentinels in errors.go.
type CredentialService interface {
	// Register creates an account for c.Username. The password is stored as
	// a one-way digest. A taken username yields ErrDuplicateUsername.
	Register(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// Authenticate checks c.Password against the stored digest of
	// c.Username. Unknown users and wrong passwords both yield
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, c models.Credentials) (models.PublicUser, error)

	// LookupByID returns the public profile of the user with the given id,
	// or ErrNotFound.
	LookupByID(ctx context.Context, userID string) (models.PublicUser, error)
}

// CredentialServiceWrapper decorates a CredentialService with a
// cross-cutting concern (validation, metrics).
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

// CipherService is the reversible string cipher exposed to callers. It is
// unrelated to password storage.
type CipherService interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
