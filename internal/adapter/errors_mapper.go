// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return NewAPIError(status, body.Field, body.Error)
	}
	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return NewAPIError(status, "", raw)
	}
	return NewAPIError(status, "", http.StatusText(status))
}

// NewAPIError builds the error for a response with the given status and
// decoded error body.
func NewAPIError(status int, field, message string) *APIError {
	sentinel, ok := statusSentinels[status]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}
	return &APIError{StatusCode: status, Field: field, Message: message, sentinel: sentinel}
}
