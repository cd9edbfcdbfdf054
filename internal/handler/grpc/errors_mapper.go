// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/service"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrValidation:         codes.InvalidArgument,
	service.ErrDuplicateUsername:  codes.AlreadyExists,
	service.ErrInvalidCredentials: codes.Unauthenticated,
	service.ErrNotFound:           codes.NotFound,
	service.ErrStorage:            codes.Internal,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// statusFromError converts a service error into a gRPC status. Messages
// follow the REST API so both transports read the same to a client.
func statusFromError(ctx context.Context, err error) error {
	code := codeFromError(err)

	var msg string
	switch code {
	case codes.InvalidArgument:
		msg = err.Error()
	case codes.AlreadyExists:
		msg = app.MsgUsernameAlreadyExists
	case codes.Unauthenticated:
		msg = app.MsgInvalidCredentials
	case codes.NotFound:
		msg = app.MsgUserNotFound
	default:
		logger.FromContext(ctx).Err(err).Msg("request failed")
		msg = app.MsgInternalServerError
	}

	return status.Error(code, msg)
}
