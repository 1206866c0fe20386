// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithTraceID(h *Handler, header string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/journal/", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{"caller id is reused", "my-custom-trace-id", true},
		{"missing id is generated", "", false},
		{"oversized id is replaced", strings.Repeat("a", maxTraceIDLength+1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, captured := serveWithTraceID(&Handler{logger: logger.Nop()}, tt.header)

			require.NotNil(t, captured)
			got := rec.Header().Get(traceIDHeader)
			if tt.wantReuse {
				assert.Equal(t, tt.header, got)
				return
			}

			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	seen := make(map[string]struct{})

	for range 100 {
		rec, _ := serveWithTraceID(h, "")
		seen[rec.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 100)
}

func TestWithTraceID_LoggerInContext(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	_, captured := serveWithTraceID(h, "trace-42")
	require.NotNil(t, captured)

	logger.FromRequest(captured).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}

func TestNewTraceID(t *testing.T) {
	id, err := uuid.Parse(newTraceID())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}
