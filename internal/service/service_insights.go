// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math"

	"github.com/MKhiriev/go-mood-journal/internal/cache"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

// mixedMoodStdDev is the population standard deviation from which ratings
// are considered to fluctuate too much for a single trend.
const mixedMoodStdDev = 1.25

// CacheRecorder is told about insights cache hits and misses.
type CacheRecorder interface {
	RecordCacheLookup(hit bool)
}

type insightsService struct {
	storage  store.MoodLogStorage
	cache    cache.InsightsCache
	recorder CacheRecorder
	logger   *logger.Logger
}

// NewInsightsService constructs an InsightsService. recorder may be nil.
func NewInsightsService(storage store.MoodLogStorage, insightsCache cache.InsightsCache, recorder CacheRecorder, logger *logger.Logger) InsightsService {
	return &insightsService{
		storage:  storage,
		cache:    insightsCache,
		recorder: recorder,
		logger:   logger,
	}
}

// MoodInsights summarizes the principal's mood logs in the filter range.
// Cache failures degrade to recomputation.
func (s *insightsService) MoodInsights(ctx context.Context, filter models.MoodLogFilter) (models.MoodInsights, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return models.MoodInsights{}, err
	}
	filter.UserID = principal.UserID
	log := logger.FromContext(ctx)

	rangeKey := cache.RangeKey(filter.StartDate, filter.EndDate)
	cached, err := s.cache.Get(ctx, principal.UserID, rangeKey)
	switch {
	case err == nil:
		s.recordLookup(true)
		return cached, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		log.Warn().Err(err).Msg("insights cache read failed")
	}
	s.recordLookup(false)

	logs, err := s.storage.List(ctx, filter)
	if err != nil {
		return models.MoodInsights{}, err
	}

	insights := ComputeMoodInsights(logs)
	if err := s.cache.Set(ctx, principal.UserID, rangeKey, insights); err != nil {
		log.Warn().Err(err).Msg("insights cache write failed")
	}

	return insights, nil
}

func (s *insightsService) recordLookup(hit bool) {
	if s.recorder != nil {
		s.recorder.RecordCacheLookup(hit)
	}
}

// ComputeMoodInsights aggregates ratings into count, mean, extremes,
// population standard deviation, per-rating distribution and a dominant mood
// label. Average and StdDev are rounded to two decimals.
func ComputeMoodInsights(logs []models.MoodLog) models.MoodInsights {
	insights := models.MoodInsights{
		Distribution: make(map[int]int, models.MaxMoodRating),
		DominantMood: models.DominantMoodNotEnoughData,
	}
	for rating := models.MinMoodRating; rating <= models.MaxMoodRating; rating++ {
		insights.Distribution[rating] = 0
	}
	if len(logs) == 0 {
		return insights
	}

	insights.Min, insights.Max = logs[0].MoodRating, logs[0].MoodRating
	sum := 0
	for _, l := range logs {
		sum += l.MoodRating
		insights.Distribution[l.MoodRating]++
		insights.Min = min(insights.Min, l.MoodRating)
		insights.Max = max(insights.Max, l.MoodRating)
	}

	count := float64(len(logs))
	mean := float64(sum) / count

	variance := 0.0
	for _, l := range logs {
		d := float64(l.MoodRating) - mean
		variance += d * d
	}
	stdDev := math.Sqrt(variance / count)

	insights.Count = len(logs)
	insights.Average = round2(mean)
	insights.StdDev = round2(stdDev)
	insights.DominantMood = dominantMood(mean, stdDev)

	return insights
}

func dominantMood(mean, stdDev float64) string {
	switch {
	case stdDev >= mixedMoodStdDev:
		return models.DominantMoodMixed
	case mean > 3.5:
		return models.DominantMoodMostlyPositive
	case mean < 2.5:
		return models.DominantMoodMostlyNegative
	default:
		return models.DominantMoodNeutral
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
