// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_InitialState(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		codes      []int
		wantStatus int
	}{
		{"single call", []int{http.StatusCreated}, http.StatusCreated},
		{"second call ignored", []int{http.StatusNotFound, http.StatusOK}, http.StatusNotFound},
		{"no content", []int{http.StatusNoContent}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_WriteAfterExplicitHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte("{}"))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, w.size)
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("X-Trace-ID", "abc")

	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
	assert.Same(t, rec, w.Unwrap())
}
