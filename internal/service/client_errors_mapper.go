// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-mood-journal/internal/adapter"
	"github.com/MKhiriev/go-mood-journal/internal/app"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
)

var ErrTooManyRequests = errors.New("too many requests, try again later")

// messageErrors maps server error messages back onto the errors the server
// produced them from.
var messageErrors = map[string]error{
	app.MsgInvalidLoginPassword:    ErrWrongPassword,
	app.MsgUnauthenticated:         ErrUnauthenticated,
	app.MsgTokenIsExpiredOrInvalid: ErrTokenIsExpiredOrInvalid,
	app.MsgLoginAlreadyExists:      store.ErrLoginAlreadyExists,
	app.MsgUserNotFound:            store.ErrNoUserWasFound,
	app.MsgJournalEntryNotFound:    store.ErrJournalEntryNotFound,
	app.MsgMoodLogNotFound:         store.ErrMoodLogNotFound,
	app.MsgTooManyRequests:         ErrTooManyRequests,
}

// fieldErrors lists the validation errors the server may report.
var fieldErrors = []error{
	validators.ErrInvalidID,
	validators.ErrEmptyContent,
	validators.ErrContentTooLarge,
	validators.ErrNoFieldsToUpdate,
	validators.ErrInvalidMoodRating,
	validators.ErrInvalidDateRange,
	validators.ErrEmptyLogin,
	validators.ErrEmptyPassword,
	validators.ErrLoginTooLong,
}

// mapAdapterError translates the adapter's transport error into the
// service, store or validation error the server reported. Errors it does
// not recognize are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.Field != "" {
		return &validators.FieldError{Field: apiErr.Field, Err: fieldErrorFromMessage(apiErr.Message)}
	}

	if mapped, ok := messageErrors[apiErr.Message]; ok {
		return mapped
	}

	if errors.Is(err, adapter.ErrTooManyRequests) {
		return ErrTooManyRequests
	}

	return err
}

func fieldErrorFromMessage(message string) error {
	for _, e := range fieldErrors {
		if e.Error() == message {
			return e
		}
	}
	return errors.New(message)
}
