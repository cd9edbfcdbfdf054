package crypto

import "errors"

var (
	// ErrUnknownAlgorithm is returned for an unsupported hash algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown password hash algorithm")
	// ErrUnknownDigestFormat is returned when a stored digest matches none of
	// the supported formats.
	ErrUnknownDigestFormat = errors.New("unknown password digest format")
	// ErrMalformedDigest is returned when a digest has a known prefix but
	// cannot be parsed.
	ErrMalformedDigest = errors.New("malformed password digest")
	// ErrPasswordTooLong is returned by the bcrypt hasher for passwords
	// longer than 72 bytes.
	ErrPasswordTooLong = errors.New("password too long for the configured algorithm")

	// ErrEmptySecret is returned when a cipher is constructed without a secret.
	ErrEmptySecret = errors.New("encryption secret is empty")
	// ErrUnknownCipherMode is returned for an unsupported cipher mode.
	ErrUnknownCipherMode = errors.New("unknown cipher mode")
	// ErrMalformedCiphertext is returned when the input is not a payload
	// produced by this package.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrDecryptionFailed is returned when the secret is wrong or the payload
	// was tampered with.
	ErrDecryptionFailed = errors.New("decryption failed")
)
