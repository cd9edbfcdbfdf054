package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, no endpoint address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, unknown hash algorithm or cipher mode).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, no listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrMissingEncryptionSecret is returned when APP_ENCRYPTION_SECRET is unset.
	ErrMissingEncryptionSecret = errors.New("encryption secret is required")
	// ErrInsecureEncryptionSecret is returned when the secret equals the
	// published placeholder value.
	ErrInsecureEncryptionSecret = errors.New("encryption secret must not be the default placeholder")
)
