// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order, so a wrapped error that matches more
// than one sentinel gets the first mapping.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgUnauthenticated},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrJournalEntryNotFound, http.StatusNotFound, app.MsgJournalEntryNotFound},
	{store.ErrMoodLogNotFound, http.StatusNotFound, app.MsgMoodLogNotFound},
}

// statusFromError returns the HTTP status and client-facing message for err.
// Anything unknown, including the store's query/scan failures, is a 500.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the matching JSON error response.
// Validation failures carry the offending field.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		log.Warn().Err(err).Str("field", fieldErr.Field).Msg("validation failed")
		utils.WriteError(w, http.StatusBadRequest, fieldErr.Field, fieldErr.Err.Error())
		return
	}

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, "", message)
}
