package service

import (
	"fmt"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/crypto"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/metrics"
	"github.com/NiharGandhi/pent/internal/store"
	"github.com/NiharGandhi/pent/models"
)

type Services struct {
	CredentialService CredentialService
	CipherService     CipherService
	AppInfoService    AppInfoService
}

// NewServices wires the server-side services. The credential service is
// decorated in the order metrics(validation(core)), so rejected requests
// are counted too.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, collector metrics.MetricsCollector, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.PasswordHashAlgorithm, crypto.HasherOptions{BcryptCost: cfg.BcryptCost})
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	if cfg.PasswordHashAlgorithm == crypto.AlgorithmSHA256 {
		logger.Warn().Msg("new passwords are stored as unsalted SHA-256 digests; use argon2id or bcrypt")
	}

	cipher, err := crypto.NewCipher(cfg.CipherMode, cfg.EncryptionSecret, crypto.Argon2Params{})
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	credentials := NewCredentialService(storages.UserRepository, hasher, logger)
	credentials = NewCredentialValidationService().Wrap(credentials)
	credentials = NewCredentialMetricsService(collector).Wrap(credentials)

	return &Services{
		CredentialService: credentials,
		CipherService:     NewCipherService(cipher, cfg.CipherMode, logger),
		AppInfoService:    appInfo,
	}, nil
}
