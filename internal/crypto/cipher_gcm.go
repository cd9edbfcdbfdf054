package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const gcmFormatVersion byte = 0x01

// encryptGCM returns version ‖ nonce ‖ ciphertext.
func (c *aesCipher) encryptGCM(plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(c.gcmKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, gcmFormatVersion)
	blob = append(blob, nonce...)

	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

func (c *aesCipher) decryptGCM(blob []byte) ([]byte, error) {
	gcm, err := newGCM(c.gcmKey)
	if err != nil {
		return nil, err
	}

	body := blob[1:]
	if len(body) < gcm.NonceSize()+gcm.Overhead() {
		return nil, ErrMalformedCiphertext
	}

	nonce, ciphertext := body[:gcm.NonceSize()], body[gcm.NonceSize():]

	// An error here almost always means a wrong secret.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
