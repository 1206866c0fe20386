// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrEmptyAddress = errors.New("empty server address")
	ErrMissingToken = errors.New("no bearer token in response")
)

// APIError is a non-2xx response. It unwraps to the sentinel matching its
// status code, so errors.Is(err, ErrNotFound) works on it.
type APIError struct {
	StatusCode int

	// Field and Message come from the server's JSON error body.
	Field   string
	Message string

	sentinel error
}

func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.sentinel, e.Field, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.sentinel, e.Message)
	}
	return e.sentinel.Error()
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}
