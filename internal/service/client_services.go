package service

import (
	"fmt"

	"github.com/NiharGandhi/pent/internal/adapter"
	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/crypto"
	"github.com/NiharGandhi/pent/internal/logger"
)

type ClientServices struct {
	AuthService   ClientAuthService
	CipherService CipherService
}

// NewClientServices wires the client-side services. Without an encryption
// secret the cipher service is still returned but every call fails with
// ErrCipherNotConfigured.
func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientApp, logger *logger.Logger) (*ClientServices, error) {
	var cipher crypto.Cipher
	if cfg.EncryptionSecret != "" {
		c, err := crypto.NewCipher(cfg.CipherMode, cfg.EncryptionSecret, crypto.Argon2Params{})
		if err != nil {
			return nil, fmt.Errorf("error creating cipher: %w", err)
		}
		cipher = c
	}

	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, logger),
		CipherService: NewCipherService(cipher, cfg.CipherMode, logger),
	}, nil
}
