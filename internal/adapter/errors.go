package adapter

import (
	"errors"
	"strings"
)

// Transport-independent errors. HTTP status codes and gRPC codes are both
// mapped onto them; the server message is appended after ": ".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("server unavailable")

	ErrNoAddress = errors.New("no server address configured")
)

var sentinels = []error{
	ErrBadRequest,
	ErrUnauthorized,
	ErrNotFound,
	ErrConflict,
	ErrTooManyRequests,
	ErrInternalServerError,
	ErrUnavailable,
}

// Message returns the server-supplied message carried by err, i.e. the text
// after the sentinel prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return strings.TrimPrefix(msg, sentinel.Error()+": ")
		}
	}

	return msg
}
