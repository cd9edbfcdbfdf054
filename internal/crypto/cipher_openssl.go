package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"fmt"
	"io"
)

const openSSLSaltLen = 8

var openSSLMagic = []byte("Salted__")

func (c *aesCipher) encryptOpenSSL(plaintext []byte) ([]byte, error) {
	salt := make([]byte, openSSLSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	return c.encryptOpenSSLWithSalt(plaintext, salt)
}

func (c *aesCipher) encryptOpenSSLWithSalt(plaintext, salt []byte) ([]byte, error) {
	key, iv := evpBytesToKey(c.secret, salt, 32, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	blob := make([]byte, 0, len(openSSLMagic)+openSSLSaltLen+len(ciphertext))
	blob = append(blob, openSSLMagic...)
	blob = append(blob, salt...)
	return append(blob, ciphertext...), nil
}

// decryptOpenSSL has no integrity check: a wrong secret is detected only
// through invalid padding.
func (c *aesCipher) decryptOpenSSL(blob []byte) ([]byte, error) {
	header := len(openSSLMagic) + openSSLSaltLen
	if len(blob) < header+aes.BlockSize || (len(blob)-header)%aes.BlockSize != 0 {
		return nil, ErrMalformedCiphertext
	}

	salt, ciphertext := blob[len(openSSLMagic):header], blob[header:]
	key, iv := evpBytesToKey(c.secret, salt, 32, aes.BlockSize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

// evpBytesToKey implements OpenSSL EVP_BytesToKey with MD5 and one iteration.
func evpBytesToKey(password, salt []byte, keyLen, ivLen int) ([]byte, []byte) {
	var (
		derived []byte
		prev    []byte
	)

	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+n), data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrDecryptionFailed
	}

	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrDecryptionFailed
		}
	}

	return data[:len(data)-n], nil
}
