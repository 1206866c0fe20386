// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
)

var (
	ErrUserQuit       = errors.New("user quit the program")
	ErrSessionExpired = errors.New("session expired")

	errNoServices = errors.New("client services are not provided")
)

// humanizeError turns client service errors into one-line messages for the
// status area.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return fieldErr.Field + ": " + fieldErr.Err.Error()
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid login or password"
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return "This login is already taken"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid), errors.Is(err, service.ErrUnauthenticated):
		return "Session expired, please log in again"
	case errors.Is(err, store.ErrJournalEntryNotFound):
		return "Journal entry not found"
	case errors.Is(err, store.ErrMoodLogNotFound):
		return "Mood log not found"
	case errors.Is(err, service.ErrTooManyRequests):
		return "Too many attempts, try again in a moment"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}

// sessionExpired reports whether err means the token is no longer accepted.
// sessionExpired also covers a token that outlived its account.
func sessionExpired(err error) bool {
	return errors.Is(err, service.ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, service.ErrUnauthenticated) ||
		errors.Is(err, store.ErrNoUserWasFound)
}
