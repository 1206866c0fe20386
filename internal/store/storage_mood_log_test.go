// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMoodLogRepository struct {
	created   models.MoodLog
	listCalls int
	listed    models.MoodLogFilter
	logs      []models.MoodLog
	err       error
}

func (m *mockMoodLogRepository) CreateMoodLog(_ context.Context, log models.MoodLog) (models.MoodLog, error) {
	m.created = log
	log.ID = 1
	return log, m.err
}

func (m *mockMoodLogRepository) GetMoodLog(_ context.Context, id, userID int64) (models.MoodLog, error) {
	for _, l := range m.logs {
		if l.ID == id && l.UserID == userID {
			return l, nil
		}
	}
	return models.MoodLog{}, ErrMoodLogNotFound
}

func (m *mockMoodLogRepository) ListMoodLogs(_ context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error) {
	m.listCalls++
	m.listed = filter
	return m.logs, m.err
}

func (m *mockMoodLogRepository) DeleteMoodLog(_ context.Context, id, userID int64) error {
	_, err := m.GetMoodLog(context.Background(), id, userID)
	return err
}

func TestMoodLogStorage_CreateStampsTimestamp(t *testing.T) {
	repo := &mockMoodLogRepository{}
	storage := NewMoodLogStorage(repo, logger.Nop()).(*moodLogStorage)

	fixed := time.Date(2026, 7, 7, 7, 7, 7, 0, time.UTC)
	storage.now = func() time.Time { return fixed }

	supplied := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	log, err := storage.Create(testContext(), models.MoodLog{UserID: 1, MoodRating: 3, Timestamp: supplied})
	require.NoError(t, err)

	assert.Equal(t, fixed, repo.created.Timestamp)
	assert.Equal(t, fixed, log.Timestamp)
	assert.Equal(t, int64(1), log.ID)
}

func TestMoodLogStorage_ListReversedRangeIsEmpty(t *testing.T) {
	repo := &mockMoodLogRepository{logs: []models.MoodLog{{ID: 1, UserID: 1, MoodRating: 2}}}
	storage := NewMoodLogStorage(repo, logger.Nop())

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	logs, err := storage.List(testContext(), models.MoodLogFilter{UserID: 1, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Zero(t, repo.listCalls)
}

func TestMoodLogStorage_ListSameDayRange(t *testing.T) {
	repo := &mockMoodLogRepository{logs: []models.MoodLog{{ID: 1, UserID: 1, MoodRating: 2}}}
	storage := NewMoodLogStorage(repo, logger.Nop())

	start := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)

	logs, err := storage.List(testContext(), models.MoodLogFilter{UserID: 1, StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Equal(t, 1, repo.listCalls)
}

func TestMoodLogStorage_GetAndDeleteAreOwnerScoped(t *testing.T) {
	repo := &mockMoodLogRepository{logs: []models.MoodLog{{ID: 5, UserID: 1, MoodRating: 4}}}
	storage := NewMoodLogStorage(repo, logger.Nop())

	_, err := storage.Get(testContext(), 5, 2)
	assert.ErrorIs(t, err, ErrMoodLogNotFound)
	assert.ErrorIs(t, storage.Delete(testContext(), 5, 2), ErrMoodLogNotFound)

	log, err := storage.Get(testContext(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, log.MoodRating)
	assert.NoError(t, storage.Delete(testContext(), 5, 1))
}
