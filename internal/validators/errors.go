// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidID         = errors.New("invalid record ID")
	ErrEmptyContent      = errors.New("content is required")
	ErrContentTooLarge   = errors.New("content exceeds maximum size")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidMoodRating = errors.New("mood rating must be between 1 and 5")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrLoginTooLong      = errors.New("login exceeds maximum length")
)

// FieldError binds a validation failure to the input field that caused it.
// It unwraps to the underlying sentinel so callers can match with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
