// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides the optional Redis cache for computed mood insights.
//
// Entries are namespaced by a per-user generation counter. Invalidate bumps
// the counter, which orphans every cached range for that user at once; the
// orphans expire on their own TTL.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// ErrCacheMiss is returned by Get when nothing is cached under the key.
var ErrCacheMiss = errors.New("insights cache miss")

// InsightsCache stores mood insights per user and date range.
type InsightsCache interface {
	Get(ctx context.Context, userID int64, rangeKey string) (models.MoodInsights, error)
	Set(ctx context.Context, userID int64, rangeKey string, insights models.MoodInsights) error
	Invalidate(ctx context.Context, userID int64) error
}

// RangeKey renders the date range of an insights request as a cache key
// suffix. Open bounds render as "*".
func RangeKey(start, end *time.Time) string {
	return formatDay(start) + ".." + formatDay(end)
}

func formatDay(t *time.Time) string {
	if t == nil {
		return "*"
	}
	return t.UTC().Format(time.DateOnly)
}

func generationKey(userID int64) string {
	return fmt.Sprintf("insights:%d:gen", userID)
}

func entryKey(userID, generation int64, rangeKey string) string {
	return fmt.Sprintf("insights:%d:%d:%s", userID, generation, rangeKey)
}

// nopCache is used when no Redis address is configured.
type nopCache struct{}

// NewNopCache returns a cache that never stores anything.
func NewNopCache() InsightsCache {
	return nopCache{}
}

func (nopCache) Get(context.Context, int64, string) (models.MoodInsights, error) {
	return models.MoodInsights{}, ErrCacheMiss
}

func (nopCache) Set(context.Context, int64, string, models.MoodInsights) error {
	return nil
}

func (nopCache) Invalidate(context.Context, int64) error {
	return nil
}
