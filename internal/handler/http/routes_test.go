// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/metrics"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testServerConfig = config.Server{AllowedOrigins: []string{"http://localhost:3000"}}

func newTestRouter(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()
	svcs, m := newServiceMocks(t)
	h := NewHandler(svcs, metrics.NewMetrics(), testServerConfig, logger.Nop())
	return h.Init(), m
}

func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestInit_PublicRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{Version: "v1"})
	m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "t"}, nil).Times(2)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/version/", "", "").Code)
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/auth/register", credentialsBody, "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/api/auth/login", credentialsBody, "").Code)
}

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodDelete, "/api/user/"},
	{http.MethodGet, "/api/journal/"},
	{http.MethodPost, "/api/journal/"},
	{http.MethodGet, "/api/journal/1/"},
	{http.MethodPut, "/api/journal/1/"},
	{http.MethodPatch, "/api/journal/1/"},
	{http.MethodDelete, "/api/journal/1/"},
	{http.MethodGet, "/api/moodlog/"},
	{http.MethodPost, "/api/moodlog/"},
	{http.MethodGet, "/api/moodlog/1/"},
	{http.MethodDelete, "/api/moodlog/1/"},
	{http.MethodGet, "/api/insights/mood"},
}

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, rt := range protectedRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := serve(router, rt.method, rt.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_ProtectedRoutes_WithToken(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().ParseToken(gomock.Any(), "valid").Return(models.Token{UserID: 1}, nil).AnyTimes()

	m.journal.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.journal.EXPECT().Get(gomock.Any(), int64(9)).Return(models.JournalEntry{ID: 9, UserID: 1}, nil)
	m.journal.EXPECT().Update(gomock.Any(), models.JournalEntryUpdate{ID: 9, Content: ptr("x")}).Return(models.JournalEntry{ID: 9}, nil)
	m.moodLog.EXPECT().Create(gomock.Any(), models.MoodLog{MoodRating: 4}).Return(models.MoodLog{ID: 2, MoodRating: 4}, nil)
	m.moodLog.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	m.insights.EXPECT().MoodInsights(gomock.Any(), gomock.Any()).Return(models.MoodInsights{DominantMood: models.DominantMoodNotEnoughData}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/journal/", "", "valid").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/journal/9/", "", "valid").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPatch, "/api/journal/9/", `{"content":"x"}`, "valid").Code)
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/api/moodlog/", `{"mood_rating":4}`, "valid").Code)
	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/api/moodlog/2/", "", "valid").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/insights/mood", "", "valid").Code)
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/api/", "/api/unknown", "/api/journal/1/extra/"} {
		rec := serve(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethod_Returns404(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/moodlog/1/"},
		{http.MethodPost, "/api/version/"},
		{http.MethodDelete, "/api/insights/mood"},
	}

	for _, tt := range tests {
		rec := serve(router, tt.method, tt.path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/api/journal/", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/journal/", nil)
	req.Header.Set(traceIDHeader, "from-client")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "from-client", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/journal/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestInit_CORSRejectsUnknownOrigin(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.VersionResponse{})

	serve(router, http.MethodGet, "/api/version/", "", "")
	rec := serve(router, http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `mood_journal_http_requests_total{method="GET",route="/api/version",status="200"} 1`)
}

func TestInit_WithoutMetrics(t *testing.T) {
	svcs, _ := newServiceMocks(t)
	router := NewHandler(svcs, nil, testServerConfig, logger.Nop()).Init()

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/metrics", "", "").Code)
}

func TestInit_AuthRoutesRateLimited(t *testing.T) {
	svcs, m := newServiceMocks(t)
	cfg := testServerConfig
	cfg.AuthRateLimit = 0.001
	cfg.AuthRateBurst = 1
	router := NewHandler(svcs, nil, cfg, logger.Nop()).Init()

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "t"}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/api/auth/login", credentialsBody, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, http.MethodPost, "/api/auth/login", credentialsBody, "").Code)
}
