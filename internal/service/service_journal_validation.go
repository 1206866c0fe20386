// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

// JournalValidationService rejects malformed input before it reaches the
// wrapped JournalService. The owner is not validated here because the inner
// service fills it from the context.
type JournalValidationService struct {
	inner     JournalService
	validator validators.Validator
}

func NewJournalValidationService() JournalServiceWrapper {
	return &JournalValidationService{
		validator: validators.NewJournalValidator(),
	}
}

func (v *JournalValidationService) Wrap(inner JournalService) JournalService {
	v.inner = inner
	return v
}

func (v *JournalValidationService) List(ctx context.Context) ([]models.JournalEntry, error) {
	return v.inner.List(ctx)
}

func (v *JournalValidationService) ListSummaries(ctx context.Context) ([]models.JournalEntry, error) {
	return v.inner.ListSummaries(ctx)
}

func (v *JournalValidationService) Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if err := v.validator.Validate(ctx, entry, validators.FieldContent); err != nil {
		return models.JournalEntry{}, fmt.Errorf("journal entry validation failed: %w", err)
	}

	return v.inner.Create(ctx, entry)
}

func (v *JournalValidationService) Get(ctx context.Context, id int64) (models.JournalEntry, error) {
	if err := v.validator.Validate(ctx, models.JournalEntry{ID: id}, validators.FieldID); err != nil {
		return models.JournalEntry{}, err
	}

	return v.inner.Get(ctx, id)
}

// Update validates the content only when it is present; an update without
// content is a no-op that returns the current entry.
func (v *JournalValidationService) Update(ctx context.Context, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	fields := []string{validators.FieldID}
	if update.Content != nil {
		fields = append(fields, validators.FieldContent)
	}

	if err := v.validator.Validate(ctx, update, fields...); err != nil {
		return models.JournalEntry{}, fmt.Errorf("journal entry validation failed: %w", err)
	}

	return v.inner.Update(ctx, update)
}

func (v *JournalValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.JournalEntry{ID: id}, validators.FieldID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}
