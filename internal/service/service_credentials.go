// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/NiharGandhi/pent/internal/crypto"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/store"
	"github.com/NiharGandhi/pent/models"
)

// dummyPassword is hashed once and verified against on the unknown-user
// path of Authenticate.
const dummyPassword = "pent-unknown-user-placeholder"

// credentialService is the concrete implementation of CredentialService.
// It persists users through a UserRepository and never stores or returns a
// plaintext password.
type credentialService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces digests for new accounts and verifies login attempts.
	hasher crypto.PasswordHasher

	dummyOnce   sync.Once
	dummyDigest string

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repository and password hasher.
//
// The returned service is safe for concurrent use.
func NewCredentialService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) CredentialService {
	return &credentialService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Username and email are trimmed; username, email and password must be
// non-empty. The password is digested with the configured hasher and the
// record is handed to the repository, which assigns the id and creation time.
//
// Returns the public projection of the new user or:
//   - ErrValidation if a field is empty or the password cannot be hashed
//     because of its length.
//   - ErrDuplicateUsername if the username is taken.
//   - ErrStorage wrapping the cause for any other persistence failure.
func (s *credentialService) Register(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(c.Username)
	email := strings.TrimSpace(c.Email)

	if username == "" || email == "" || c.Password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.PublicUser{}, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	digest, err := s.hasher.Hash(c.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.PublicUser{}, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", username).Msg("username already exists")
			return models.PublicUser{}, ErrDuplicateUsername
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	log.Info().Str("user_id", created.UserID).Str("username", created.Username).Msg("user registered")

	return created.Public(), nil
}

// Authenticate verifies a username/password pair.
//
// An unknown username and a wrong password both return
// ErrInvalidCredentials. On the unknown-user path one digest verification
// still runs so both paths cost about the same.
func (s *credentialService) Authenticate(ctx context.Context, c models.Credentials) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(c.Username)
	if username == "" {
		log.Error().Msg("empty username provided")
		return models.PublicUser{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	found, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.verifyDummy(c.Password)
			log.Info().Str("username", username).Msg("login for unknown username")
			return models.PublicUser{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	ok, err := s.hasher.Verify(c.Password, found.PasswordDigest)
	if err != nil {
		log.Err(err).Str("user_id", found.UserID).Msg("stored password digest cannot be verified")
		return models.PublicUser{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("user_id", found.UserID).Msg("wrong password")
		return models.PublicUser{}, ErrInvalidCredentials
	}

	return found.Public(), nil
}

// LookupByID returns the public profile of a user.
func (s *credentialService) LookupByID(ctx context.Context, userID string) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return models.PublicUser{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	found, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PublicUser{}, ErrNotFound
		}
		log.Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.PublicUser{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return found.Public(), nil
}

// verifyDummy runs one verification against a digest produced by the
// configured hasher. The result is discarded.
func (s *credentialService) verifyDummy(password string) {
	s.dummyOnce.Do(func() {
		digest, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Err(err).Msg("dummy digest could not be computed")
			return
		}
		s.dummyDigest = digest
	})

	if s.dummyDigest == "" {
		return
	}

	_, _ = s.hasher.Verify(password, s.dummyDigest)
}
