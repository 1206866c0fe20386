// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/internal/cache"
	"github.com/MKhiriev/go-mood-journal/internal/guard"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

// moodLogService scopes MoodLogStorage calls to the principal and drops
// cached insights of the owner after every write.
type moodLogService struct {
	storage store.MoodLogStorage
	cache   cache.InsightsCache
	logger  *logger.Logger
}

// NewMoodLogService constructs a MoodLogService. insightsCache may be the
// no-op cache.
func NewMoodLogService(storage store.MoodLogStorage, insightsCache cache.InsightsCache, logger *logger.Logger) MoodLogService {
	return &moodLogService{
		storage: storage,
		cache:   insightsCache,
		logger:  logger,
	}
}

func (s *moodLogService) authorize(ctx context.Context, op guard.Operation, record guard.Owned) (guard.Principal, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return guard.Principal{}, err
	}

	if !guard.Authorize(op, record, principal).Allowed() {
		logger.FromContext(ctx).Warn().
			Str("op", op.String()).
			Int64("user_id", principal.UserID).
			Msg("mood log access denied")
		if op == guard.OpDelete {
			return guard.Principal{}, store.ErrMoodLogNotFound
		}
		return guard.Principal{}, ErrUnauthenticated
	}

	return principal, nil
}

func (s *moodLogService) List(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error) {
	principal, err := s.authorize(ctx, guard.OpList, nil)
	if err != nil {
		return nil, err
	}

	filter.UserID = principal.UserID
	return s.storage.List(ctx, filter)
}

func (s *moodLogService) Create(ctx context.Context, log models.MoodLog) (models.MoodLog, error) {
	principal, err := s.authorize(ctx, guard.OpCreate, nil)
	if err != nil {
		return models.MoodLog{}, err
	}

	log.UserID = principal.UserID
	created, err := s.storage.Create(ctx, log)
	if err != nil {
		return models.MoodLog{}, err
	}

	s.invalidateInsights(ctx, principal.UserID)
	return created, nil
}

func (s *moodLogService) Get(ctx context.Context, id int64) (models.MoodLog, error) {
	principal, err := s.authorize(ctx, guard.OpRead, nil)
	if err != nil {
		return models.MoodLog{}, err
	}

	return s.storage.Get(ctx, id, principal.UserID)
}

func (s *moodLogService) Delete(ctx context.Context, id int64) error {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	current, err := s.storage.Get(ctx, id, principal.UserID)
	if err != nil {
		return err
	}

	if _, err := s.authorize(ctx, guard.OpDelete, current); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, id, principal.UserID); err != nil {
		return err
	}

	s.invalidateInsights(ctx, principal.UserID)
	return nil
}

// invalidateInsights never fails the write: stale insights expire on their TTL.
func (s *moodLogService) invalidateInsights(ctx context.Context, userID int64) {
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("insights cache invalidation failed")
	}
}
