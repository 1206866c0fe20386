// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/internal/adapter"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

type clientJournalService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
}

func NewClientJournalService(serverAdapter adapter.ServerAdapter) ClientJournalService {
	return &clientJournalService{adapter: serverAdapter, validator: validators.NewJournalValidator()}
}

func (c *clientJournalService) List(ctx context.Context) ([]models.JournalEntry, error) {
	entries, err := c.adapter.ListJournalEntries(ctx, false)
	return entries, mapAdapterError(err)
}

func (c *clientJournalService) ListSummaries(ctx context.Context) ([]models.JournalEntry, error) {
	entries, err := c.adapter.ListJournalEntries(ctx, true)
	return entries, mapAdapterError(err)
}

func (c *clientJournalService) Create(ctx context.Context, content string) (models.JournalEntry, error) {
	if err := c.validator.Validate(ctx, models.JournalEntry{Content: content}, validators.FieldContent); err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := c.adapter.CreateJournalEntry(ctx, content)
	return entry, mapAdapterError(err)
}

func (c *clientJournalService) Get(ctx context.Context, id int64) (models.JournalEntry, error) {
	if err := c.validator.Validate(ctx, models.JournalEntry{ID: id}, validators.FieldID); err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := c.adapter.GetJournalEntry(ctx, id)
	return entry, mapAdapterError(err)
}

func (c *clientJournalService) Update(ctx context.Context, id int64, content string) (models.JournalEntry, error) {
	if err := c.validator.Validate(ctx, models.JournalEntry{ID: id, Content: content}, validators.FieldID, validators.FieldContent); err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := c.adapter.UpdateJournalEntry(ctx, id, content)
	return entry, mapAdapterError(err)
}

func (c *clientJournalService) Delete(ctx context.Context, id int64) error {
	if err := c.validator.Validate(ctx, models.JournalEntry{ID: id}, validators.FieldID); err != nil {
		return err
	}

	return mapAdapterError(c.adapter.DeleteJournalEntry(ctx, id))
}
