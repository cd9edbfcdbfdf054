// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NiharGandhi/pent/internal/app"
	"github.com/NiharGandhi/pent/internal/logger"
	"github.com/NiharGandhi/pent/internal/utils"
	"github.com/NiharGandhi/pent/models"
)

// register handles POST /api/user/register and answers 201 with the public
// projection of the new user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials, maxRequestBodyBytes); err != nil {
		log.Err(err).Msg("invalid registration body")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registered, err := h.services.CredentialService.Register(r.Context(), credentials)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	log.Debug().Str("user_id", registered.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, registered, http.StatusCreated)
}

// login handles POST /api/user/login. Unknown usernames and wrong passwords
// are both answered with 401 and the same message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials, maxRequestBodyBytes); err != nil {
		log.Err(err).Msg("invalid login body")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.CredentialService.Authenticate(r.Context(), credentials)
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) lookupUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.CredentialService.LookupByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, err, app.MsgLookupFailed)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
