// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
)

// moodLogStorage is the default implementation of [MoodLogStorage]. Mood
// logs carry no sensitive free text, so the storage only stamps the
// creation timestamp and delegates to the repository.
type moodLogStorage struct {
	repository MoodLogRepository
	now        func() time.Time
	logger     *logger.Logger
}

// NewMoodLogStorage constructs a [MoodLogStorage].
func NewMoodLogStorage(repository MoodLogRepository, logger *logger.Logger) MoodLogStorage {
	logger.Debug().Msg("creating mood log storage")

	return &moodLogStorage{
		repository: repository,
		now:        utcNow,
		logger:     logger,
	}
}

// Create stamps the log with the current time and persists it. Any
// timestamp supplied by the caller is ignored.
func (s *moodLogStorage) Create(ctx context.Context, log models.MoodLog) (models.MoodLog, error) {
	log.Timestamp = s.now()
	return s.repository.CreateMoodLog(ctx, log)
}

func (s *moodLogStorage) Get(ctx context.Context, id, userID int64) (models.MoodLog, error) {
	return s.repository.GetMoodLog(ctx, id, userID)
}

// List returns the user's logs, newest first. A start date after the end
// date yields an empty result without touching the database.
func (s *moodLogStorage) List(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error) {
	if filter.StartDate != nil && filter.EndDate != nil &&
		startOfDay(*filter.StartDate).After(startOfDay(*filter.EndDate)) {
		return []models.MoodLog{}, nil
	}

	return s.repository.ListMoodLogs(ctx, filter)
}

func (s *moodLogStorage) Delete(ctx context.Context, id, userID int64) error {
	return s.repository.DeleteMoodLog(ctx, id, userID)
}
