package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns a plaintext password into a storable digest and
// verifies login attempts against a stored digest.
//
// Verify returns (false, nil) on a mismatch. A non-nil error means the digest
// itself could not be interpreted.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) (bool, error)
}

// Cipher is a symmetric encrypt/decrypt pair bound to a single secret.
// For every plaintext x, Decrypt(Encrypt(x)) == x under the same secret.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Supported password hashing algorithms.
const (
	AlgorithmArgon2id = "argon2id"
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmSHA256   = "sha256"
)

// Supported cipher output formats.
const (
	CipherModeGCM     = "gcm"
	CipherModeOpenSSL = "openssl"
)
