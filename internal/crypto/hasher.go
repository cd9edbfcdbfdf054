// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"
)

// HasherOptions configures [NewPasswordHasher].
type HasherOptions struct {
	Argon2     Argon2Params
	BcryptCost int
}

// dispatchingHasher hashes with the configured algorithm and verifies any
// supported digest format, so records written under a previous configuration
// keep working.
type dispatchingHasher struct {
	algorithm string
	primary   PasswordHasher
	argon2    PasswordHasher
	bcrypt    PasswordHasher
	sha256    PasswordHasher
}

// NewPasswordHasher returns a [PasswordHasher] whose Hash uses algorithm and
// whose Verify detects the digest format from the digest itself:
//   - "$argon2id$" prefix: Argon2id
//   - "$2a$", "$2b$" or "$2y$" prefix: bcrypt
//   - 64 lowercase hex characters: legacy SHA-256
//
// A zero-value opts.Argon2 selects [DefaultArgon2Params].
func NewPasswordHasher(algorithm string, opts HasherOptions) (PasswordHasher, error) {
	if opts.Argon2 == (Argon2Params{}) {
		opts.Argon2 = DefaultArgon2Params()
	}

	h := &dispatchingHasher{
		algorithm: algorithm,
		argon2:    NewArgon2Hasher(opts.Argon2),
		bcrypt:    NewBcryptHasher(opts.BcryptCost),
		sha256:    NewSHA256Hasher(),
	}

	switch algorithm {
	case AlgorithmArgon2id:
		h.primary = h.argon2
	case AlgorithmBcrypt:
		h.primary = h.bcrypt
	case AlgorithmSHA256:
		h.primary = h.sha256
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	return h, nil
}

func (h *dispatchingHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *dispatchingHasher) Verify(password, digest string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, argon2Prefix):
		return h.argon2.Verify(password, digest)
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return h.bcrypt.Verify(password, digest)
	case isSHA256Hex(digest):
		return h.sha256.Verify(password, digest)
	default:
		return false, ErrUnknownDigestFormat
	}
}
