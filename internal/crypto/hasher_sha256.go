package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const sha256HexLen = sha256.Size * 2

// SHA256Hex returns the lowercase hex SHA-256 digest of the raw password.
// It is deterministic and unsalted.
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

type sha256Hasher struct{}

// NewSHA256Hasher returns the legacy unsalted hasher. Digests are 64
// lowercase hex characters.
func NewSHA256Hasher() PasswordHasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(password string) (string, error) {
	return SHA256Hex(password), nil
}

func (sha256Hasher) Verify(password, digest string) (bool, error) {
	if !isSHA256Hex(digest) {
		return false, ErrMalformedDigest
	}
	return subtle.ConstantTimeCompare([]byte(SHA256Hex(password)), []byte(digest)) == 1, nil
}

func isSHA256Hex(digest string) bool {
	if len(digest) != sha256HexLen {
		return false
	}
	for i := 0; i < len(digest); i++ {
		c := digest[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
