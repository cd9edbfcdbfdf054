package service

import (
	"context"
	"fmt"

	"github.com/NiharGandhi/pent/internal/crypto"
	"github.com/NiharGandhi/pent/internal/logger"
)

type cipherService struct {
	cipher crypto.Cipher
	mode   string

	logger *logger.Logger
}

// NewCipherService wraps a crypto.Cipher. mode is only used for logging.
func NewCipherService(cipher crypto.Cipher, mode string, logger *logger.Logger) CipherService {
	return &cipherService{
		cipher: cipher,
		mode:   mode,
		logger: logger,
	}
}

func (s *cipherService) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if s.cipher == nil {
		return "", ErrCipherNotConfigured
	}

	ciphertext, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("mode", s.mode).Msg("encryption failed")
		return "", fmt.Errorf("encryption failed: %w", err)
	}

	return ciphertext, nil
}

func (s *cipherService) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	if s.cipher == nil {
		return "", ErrCipherNotConfigured
	}

	plaintext, err := s.cipher.Decrypt(ciphertext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("decryption failed")
		return "", fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}
