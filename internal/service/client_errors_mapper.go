// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/NiharGandhi/pent/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. serverFailure is returned for 5xx answers.
func mapAdapterError(err error, serverFailure error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %s", ErrValidation, adapter.Message(err))
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrInvalidCredentials
	case errors.Is(err, adapter.ErrConflict):
		return ErrDuplicateUsername
	case errors.Is(err, adapter.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrServerRateLimit
	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %s", serverFailure, adapter.Message(err))
	}

	return err
}
