// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2Prefix = "$argon2id$"

// Upper bounds for cost parameters read back from a stored digest.
const (
	maxArgon2Memory = 1 << 20 // KiB, 1 GiB
	maxArgon2Time   = 32
	maxArgon2KeyLen = 1024
)

// Argon2Params holds the Argon2id tuning parameters. They are stored next to
// every digest, so changing them only affects newly created digests.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultArgon2Params returns the parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - salt length: 16 bytes
//   - key length:  32 bytes (256 bits)
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		SaltLen: 16,
		KeyLen:  32,
	}
}

type argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher constructs a [PasswordHasher] producing PHC-formatted
// Argon2id digests:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Salt and key are encoded with unpadded standard Base64.
func NewArgon2Hasher(params Argon2Params) PasswordHasher {
	return &argon2Hasher{params: params}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return h.hashWithSalt(password, salt), nil
}

func (h *argon2Hasher) hashWithSalt(password string, salt []byte) string {
	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

// Verify re-derives the key with the parameters and salt embedded in digest
// and compares it in constant time.
func (h *argon2Hasher) Verify(password, digest string) (bool, error) {
	params, salt, key, err := parseArgon2Digest(digest)
	if err != nil {
		return false, err
	}

	other := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func parseArgon2Digest(digest string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return params, nil, nil, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrMalformedDigest, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}

	switch {
	case params.Time == 0 || params.Time > maxArgon2Time:
		return params, nil, nil, fmt.Errorf("%w: time cost %d out of range", ErrMalformedDigest, params.Time)
	case params.Threads == 0:
		return params, nil, nil, fmt.Errorf("%w: parallelism must be positive", ErrMalformedDigest)
	case params.Memory == 0 || params.Memory > maxArgon2Memory:
		return params, nil, nil, fmt.Errorf("%w: memory cost %d out of range", ErrMalformedDigest, params.Memory)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: %w", ErrMalformedDigest, err)
	}
	if len(salt) == 0 {
		return params, nil, nil, fmt.Errorf("%w: empty salt", ErrMalformedDigest)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > maxArgon2KeyLen {
		return params, nil, nil, ErrMalformedDigest
	}

	params.SaltLen = uint32(len(salt))
	params.KeyLen = uint32(len(key))

	return params, salt, key, nil
}
