package http

import (
	"errors"
	"net/http"

	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/service"
	"github.com/NiharGandhi/pent/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrDuplicateUsername:  http.StatusConflict,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrNotFound:           http.StatusNotFound,
	service.ErrStorage:            http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the response text for err. Validation errors
// carry their own detail; server-side failures are reduced to fallback so
// storage details never reach the client.
func messageFromError(err error, status int, fallback string) string {
	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusConflict:
		return app.MsgUsernameAlreadyExists
	case http.StatusUnauthorized:
		return app.MsgInvalidCredentials
	case http.StatusNotFound:
		return app.MsgUserNotFound
	default:
		return fallback
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Str("reason", err.Error()).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status, fallback), status)
}
