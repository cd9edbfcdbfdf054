// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// InsecureEncryptionSecret is the placeholder secret shipped in sample
// environments. It is rejected at startup.
const InsecureEncryptionSecret = "default-secret-key-change-in-production"

var (
	knownHashAlgorithms = []string{"argon2id", "bcrypt", "sha256"}
	knownCipherModes    = []string{"gcm", "openssl"}
	knownDrivers        = []string{"", "postgres", "pgx", "sqlite3", "sqlite"}
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := validateSecret(cfg.App.EncryptionSecret); err != nil {
		return err
	}

	if !contains(knownHashAlgorithms, cfg.App.PasswordHashAlgorithm) {
		return fmt.Errorf("%w: unknown password hash algorithm %q",
			ErrInvalidAppConfigs, cfg.App.PasswordHashAlgorithm)
	}

	if !contains(knownCipherModes, cfg.App.CipherMode) {
		return fmt.Errorf("%w: unknown cipher mode %q", ErrInvalidAppConfigs, cfg.App.CipherMode)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if !contains(knownDrivers, strings.ToLower(cfg.Storage.DB.Driver)) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one of HTTP or gRPC address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.AuthRateLimit < 0 || cfg.Server.AuthRateBurst < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.EncryptionSecret == InsecureEncryptionSecret {
		return ErrInsecureEncryptionSecret
	}

	return nil
}

func validateSecret(secret string) error {
	if secret == "" {
		return ErrMissingEncryptionSecret
	}

	if secret == InsecureEncryptionSecret {
		return ErrInsecureEncryptionSecret
	}

	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
