// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	auth     *mock.MockAuthService
	journal  *mock.MockJournalService
	moodLog  *mock.MockMoodLogService
	insights *mock.MockInsightsService
	appInfo  *mock.MockAppInfoService
}

func newServiceMocks(t *testing.T) (*service.Services, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:     mock.NewMockAuthService(ctrl),
		journal:  mock.NewMockJournalService(ctrl),
		moodLog:  mock.NewMockMoodLogService(ctrl),
		insights: mock.NewMockInsightsService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	return &service.Services{
		AuthService:     m.auth,
		JournalService:  m.journal,
		MoodLogService:  m.moodLog,
		InsightsService: m.insights,
		AppInfoService:  m.appInfo,
	}, m
}

// newMockedHandler builds a Handler over gomock services without metrics or
// rate limiting.
func newMockedHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	svcs, m := newServiceMocks(t)
	return NewHandler(svcs, nil, config.Server{}, logger.Nop()), m
}

func withUser(r *http.Request, userID int64) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, nil, config.Server{AuthRateLimit: 2, AuthRateBurst: 3}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	require.NotNil(t, h.authLimiter)
	assert.Equal(t, 3, h.authLimiter.burst)
}

func TestNewHandler_RateLimitDisabled(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())

	assert.Nil(t, h.authLimiter)
}
