// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/cache"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/mock"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMoodLogSvc(t *testing.T) (MoodLogService, *mock.MockMoodLogStorage, *mock.MockInsightsCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockMoodLogStorage(ctrl)
	insights := mock.NewMockInsightsCache(ctrl)

	svc := NewMoodLogValidationService().Wrap(NewMoodLogService(storage, insights, logger.Nop()))
	return svc, storage, insights
}

func TestMoodLogService_Create_ValidRatings(t *testing.T) {
	svc, storage, insights := newTestMoodLogSvc(t)
	ctx := userCtx(1)

	for rating := models.MinMoodRating; rating <= models.MaxMoodRating; rating++ {
		storage.EXPECT().
			Create(gomock.Any(), models.MoodLog{UserID: 1, MoodRating: rating}).
			Return(models.MoodLog{ID: int64(rating), UserID: 1, MoodRating: rating, Timestamp: time.Now().UTC()}, nil)
		insights.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(nil)

		created, err := svc.Create(ctx, models.MoodLog{MoodRating: rating})
		require.NoError(t, err)
		assert.Equal(t, rating, created.MoodRating)
	}
}

func TestMoodLogService_Create_InvalidRatingsNeverReachStorage(t *testing.T) {
	svc, _, _ := newTestMoodLogSvc(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(userCtx(1), models.MoodLog{MoodRating: rating})
		assert.ErrorIs(t, err, validators.ErrInvalidMoodRating, "rating %d", rating)

		var fe *validators.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, validators.FieldMoodRating, fe.Field)
	}
}

func TestMoodLogService_Create_CacheFailureDoesNotFailWrite(t *testing.T) {
	svc, storage, insights := newTestMoodLogSvc(t)

	storage.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.MoodLog{ID: 1, UserID: 1, MoodRating: 3}, nil)
	insights.EXPECT().Invalidate(gomock.Any(), int64(1)).Return(errors.New("redis down"))

	_, err := svc.Create(userCtx(1), models.MoodLog{MoodRating: 3})
	assert.NoError(t, err)
}

func TestMoodLogService_List_ScopesFilterToPrincipal(t *testing.T) {
	svc, storage, _ := newTestMoodLogSvc(t)
	start := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)

	storage.EXPECT().
		List(gomock.Any(), models.MoodLogFilter{UserID: 4, StartDate: &start}).
		Return([]models.MoodLog{{ID: 2, UserID: 4, MoodRating: 5}}, nil)

	logs, err := svc.List(userCtx(4), models.MoodLogFilter{UserID: 77, StartDate: &start})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestMoodLogService_Get(t *testing.T) {
	svc, storage, _ := newTestMoodLogSvc(t)

	storage.EXPECT().Get(gomock.Any(), int64(3), int64(2)).Return(models.MoodLog{}, store.ErrMoodLogNotFound)

	_, err := svc.Get(userCtx(2), 3)
	assert.ErrorIs(t, err, store.ErrMoodLogNotFound)

	_, err = svc.Get(userCtx(2), 0)
	assert.ErrorIs(t, err, validators.ErrInvalidID)
}

func TestMoodLogService_Delete(t *testing.T) {
	svc, storage, insights := newTestMoodLogSvc(t)

	gomock.InOrder(
		storage.EXPECT().Get(gomock.Any(), int64(3), int64(2)).Return(models.MoodLog{ID: 3, UserID: 2, MoodRating: 1}, nil),
		storage.EXPECT().Delete(gomock.Any(), int64(3), int64(2)).Return(nil),
		insights.EXPECT().Invalidate(gomock.Any(), int64(2)).Return(nil),
	)

	require.NoError(t, svc.Delete(userCtx(2), 3))
}

func TestMoodLogService_Delete_ForeignIsNotFound(t *testing.T) {
	svc, storage, _ := newTestMoodLogSvc(t)

	storage.EXPECT().Get(gomock.Any(), int64(3), int64(2)).Return(models.MoodLog{}, store.ErrMoodLogNotFound)

	assert.ErrorIs(t, svc.Delete(userCtx(2), 3), store.ErrMoodLogNotFound)
}

func TestMoodLogService_Unauthenticated(t *testing.T) {
	svc, _, _ := newTestMoodLogSvc(t)
	ctx := context.Background()

	_, err := svc.List(ctx, models.MoodLogFilter{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Create(ctx, models.MoodLog{MoodRating: 3})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrUnauthenticated)
}

func TestMoodLogService_WithNopCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockMoodLogStorage(ctrl)
	svc := NewMoodLogService(storage, cache.NewNopCache(), logger.Nop())

	storage.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.MoodLog{ID: 1, UserID: 1, MoodRating: 2}, nil)

	_, err := svc.Create(userCtx(1), models.MoodLog{MoodRating: 2})
	assert.NoError(t, err)
}
