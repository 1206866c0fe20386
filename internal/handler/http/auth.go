// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeServiceError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeServiceError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.SignedString))
	w.WriteHeader(http.StatusOK)
}

// deleteAccount removes the authenticated user together with every journal
// entry and mood log they own.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.DeleteAccount(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
