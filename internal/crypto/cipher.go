// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// cipherKeySalt domain-separates the cipher key from any other Argon2id
// output derived from the same secret.
var cipherKeySalt = []byte("pent/cipher/aes-256-gcm/v1")

// aesCipher is the private implementation of [Cipher]. It encrypts in one
// mode but decrypts both supported payload formats.
type aesCipher struct {
	mode   string
	secret []byte
	gcmKey []byte
}

// NewCipher constructs a [Cipher] bound to secret.
//
// mode selects the output format of Encrypt:
//   - [CipherModeGCM]: base64(0x01 ‖ nonce ‖ AES-256-GCM ciphertext ‖ tag),
//     with the key derived once from secret via Argon2id.
//   - [CipherModeOpenSSL]: base64("Salted__" ‖ salt ‖ AES-256-CBC ciphertext),
//     the format produced by CryptoJS AES.encrypt with a passphrase.
//
// A zero-value kdf selects [DefaultArgon2Params].
func NewCipher(mode, secret string, kdf Argon2Params) (Cipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	switch mode {
	case CipherModeGCM, CipherModeOpenSSL:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipherMode, mode)
	}

	if kdf == (Argon2Params{}) {
		kdf = DefaultArgon2Params()
	}

	return &aesCipher{
		mode:   mode,
		secret: []byte(secret),
		gcmKey: argon2.IDKey([]byte(secret), cipherKeySalt, kdf.Time, kdf.Memory, kdf.Threads, 32),
	}, nil
}

func (c *aesCipher) Encrypt(plaintext string) (string, error) {
	var (
		blob []byte
		err  error
	)

	if c.mode == CipherModeOpenSSL {
		blob, err = c.encryptOpenSSL([]byte(plaintext))
	} else {
		blob, err = c.encryptGCM([]byte(plaintext))
	}
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt detects the payload format from its header, independent of the
// mode the cipher was constructed with.
func (c *aesCipher) Decrypt(ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	var plaintext []byte
	switch {
	case bytes.HasPrefix(blob, openSSLMagic):
		plaintext, err = c.decryptOpenSSL(blob)
	case len(blob) > 0 && blob[0] == gcmFormatVersion:
		plaintext, err = c.decryptGCM(blob)
	default:
		return "", ErrMalformedCiphertext
	}
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}
