// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/adapter"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

type clientMoodService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientMoodService(serverAdapter adapter.ServerAdapter) ClientMoodService {
	return &clientMoodService{adapter: serverAdapter, validator: validators.NewMoodLogValidator()}
}

func (c *clientMoodService) List(ctx context.Context, start, end *time.Time) ([]models.MoodLog, error) {
	logs, err := c.adapter.ListMoodLogs(ctx, start, end)
	return logs, mapAdapterError(err)
}

func (c *clientMoodService) Log(ctx context.Context, rating int) (models.MoodLog, error) {
	if err := c.validator.Validate(ctx, models.MoodLog{MoodRating: rating}, validators.FieldMoodRating); err != nil {
		return models.MoodLog{}, err
	}

	moodLog, err := c.adapter.CreateMoodLog(ctx, rating)
	return moodLog, mapAdapterError(err)
}

func (c *clientMoodService) Delete(ctx context.Context, id int64) error {
	if err := c.validator.Validate(ctx, models.MoodLog{ID: id}, validators.FieldID); err != nil {
		return err
	}

	return mapAdapterError(c.adapter.DeleteMoodLog(ctx, id))
}

func (c *clientMoodService) Insights(ctx context.Context, start, end *time.Time) (models.MoodInsights, error) {
	insights, err := c.adapter.MoodInsights(ctx, start, end)
	return insights, mapAdapterError(err)
}

type clientInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientInfoService(serverAdapter adapter.ServerAdapter) ClientInfoService {
	return &clientInfoService{adapter: serverAdapter}
}

func (c *clientInfoService) ServerVersion(ctx context.Context) (models.VersionResponse, error) {
	version, err := c.adapter.ServerVersion(ctx)
	return version, mapAdapterError(err)
}
