// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/utils"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/go-resty/resty/v2"
)

const dateLayout = "2006-01-02"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a REST [ServerAdapter] for the server at
// adapterCfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts credentials and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return fmt.Errorf("auth request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("login", user.Login).Str("path", path).Msg("authenticated")
	return nil
}

func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/user/")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) ListJournalEntries(ctx context.Context, summary bool) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	req := h.authedRequest(ctx).SetResult(&entries)
	if summary {
		req.SetQueryParam("summary", "true")
	}

	resp, err := req.Get("/api/journal/")
	if err != nil {
		return nil, fmt.Errorf("list journal entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) CreateJournalEntry(ctx context.Context, content string) (models.JournalEntry, error) {
	var entry models.JournalEntry

	resp, err := h.authedRequest(ctx).
		SetBody(models.CreateJournalEntryRequest{Content: &content}).
		SetResult(&entry).
		Post("/api/journal/")
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("create journal entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) GetJournalEntry(ctx context.Context, id int64) (models.JournalEntry, error) {
	var entry models.JournalEntry

	resp, err := h.authedRequest(ctx).
		SetResult(&entry).
		Get(journalEntryPath(id))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("get journal entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) UpdateJournalEntry(ctx context.Context, id int64, content string) (models.JournalEntry, error) {
	var entry models.JournalEntry

	resp, err := h.authedRequest(ctx).
		SetBody(models.CreateJournalEntryRequest{Content: &content}).
		SetResult(&entry).
		Put(journalEntryPath(id))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("update journal entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) DeleteJournalEntry(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(journalEntryPath(id))
	if err != nil {
		return fmt.Errorf("delete journal entry request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListMoodLogs(ctx context.Context, start, end *time.Time) ([]models.MoodLog, error) {
	var logs []models.MoodLog

	resp, err := withDateRange(h.authedRequest(ctx), start, end).
		SetResult(&logs).
		Get("/api/moodlog/")
	if err != nil {
		return nil, fmt.Errorf("list mood logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return logs, nil
}

func (h *httpServerAdapter) CreateMoodLog(ctx context.Context, rating int) (models.MoodLog, error) {
	var moodLog models.MoodLog

	resp, err := h.authedRequest(ctx).
		SetBody(models.CreateMoodLogRequest{MoodRating: &rating}).
		SetResult(&moodLog).
		Post("/api/moodlog/")
	if err != nil {
		return models.MoodLog{}, fmt.Errorf("create mood log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MoodLog{}, err
	}

	return moodLog, nil
}

func (h *httpServerAdapter) DeleteMoodLog(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/api/moodlog/" + strconv.FormatInt(id, 10) + "/")
	if err != nil {
		return fmt.Errorf("delete mood log request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) MoodInsights(ctx context.Context, start, end *time.Time) (models.MoodInsights, error) {
	var insights models.MoodInsights

	resp, err := withDateRange(h.authedRequest(ctx), start, end).
		SetResult(&insights).
		Get("/api/insights/mood")
	if err != nil {
		return models.MoodInsights{}, fmt.Errorf("mood insights request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MoodInsights{}, err
	}

	return insights, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version/")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func journalEntryPath(id int64) string {
	return "/api/journal/" + strconv.FormatInt(id, 10) + "/"
}

func withDateRange(req *resty.Request, start, end *time.Time) *resty.Request {
	if start != nil {
		req.SetQueryParam("start_date", start.UTC().Format(dateLayout))
	}
	if end != nil {
		req.SetQueryParam("end_date", end.UTC().Format(dateLayout))
	}
	return req
}
