// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// MoodLogValidationService rejects out-of-range ratings and bad ids before
// they reach the wrapped MoodLogService.
type MoodLogValidationService struct {
	inner     MoodLogService
	validator validators.Validator
}

func NewMoodLogValidationService() MoodLogServiceWrapper {
	return &MoodLogValidationService{
		validator: validators.NewMoodLogValidator(),
	}
}

func (v *MoodLogValidationService) Wrap(inner MoodLogService) MoodLogService {
	v.inner = inner
	return v
}

// List passes the filter through. A start date after the end date is not
// rejected; the listing is empty.
func (v *MoodLogValidationService) List(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error) {
	return v.inner.List(ctx, filter)
}

func (v *MoodLogValidationService) Create(ctx context.Context, log models.MoodLog) (models.MoodLog, error) {
	if err := v.validator.Validate(ctx, log, validators.FieldMoodRating); err != nil {
		return models.MoodLog{}, fmt.Errorf("mood log validation failed: %w", err)
	}

	return v.inner.Create(ctx, log)
}

func (v *MoodLogValidationService) Get(ctx context.Context, id int64) (models.MoodLog, error) {
	if err := v.validator.Validate(ctx, models.MoodLog{ID: id}, validators.FieldID); err != nil {
		return models.MoodLog{}, err
	}

	return v.inner.Get(ctx, id)
}

func (v *MoodLogValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.MoodLog{ID: id}, validators.FieldID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}
