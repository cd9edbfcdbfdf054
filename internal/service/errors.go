package service

import "errors"

// Credential service errors. Transports match them with errors.Is and
// translate them into status codes.
var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("user not found")
	ErrStorage            = errors.New("storage failure")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrCipherNotConfigured   = errors.New("cipher is not configured")
)

// Client-side errors returned when the server answers with something the
// typed errors above cannot express.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrLookupOnServer   = errors.New("lookup on server failed")
	ErrServerRateLimit  = errors.New("too many requests, try again later")
)
