// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/internal/guard"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

// journalService scopes every JournalStorage call to the principal found in
// the context and consults the guard before each operation.
type journalService struct {
	storage store.JournalStorage
	logger  *logger.Logger
}

// NewJournalService constructs a JournalService over the given storage.
func NewJournalService(storage store.JournalStorage, logger *logger.Logger) JournalService {
	return &journalService{
		storage: storage,
		logger:  logger,
	}
}

// authorize resolves the principal and asks the guard about op on record.
// A deny on a write is reported as not found so existence is never leaked.
func (s *journalService) authorize(ctx context.Context, op guard.Operation, record guard.Owned) (guard.Principal, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return guard.Principal{}, err
	}

	if !guard.Authorize(op, record, principal).Allowed() {
		logger.FromContext(ctx).Warn().
			Str("op", op.String()).
			Int64("user_id", principal.UserID).
			Msg("journal access denied")
		if op == guard.OpUpdate || op == guard.OpDelete {
			return guard.Principal{}, store.ErrJournalEntryNotFound
		}
		return guard.Principal{}, ErrUnauthenticated
	}

	return principal, nil
}

func (s *journalService) List(ctx context.Context) ([]models.JournalEntry, error) {
	principal, err := s.authorize(ctx, guard.OpList, nil)
	if err != nil {
		return nil, err
	}

	return s.storage.List(ctx, principal.UserID)
}

func (s *journalService) ListSummaries(ctx context.Context) ([]models.JournalEntry, error) {
	principal, err := s.authorize(ctx, guard.OpList, nil)
	if err != nil {
		return nil, err
	}

	return s.storage.ListSummaries(ctx, principal.UserID)
}

func (s *journalService) Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	principal, err := s.authorize(ctx, guard.OpCreate, nil)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.UserID = principal.UserID
	return s.storage.Create(ctx, entry)
}

func (s *journalService) Get(ctx context.Context, id int64) (models.JournalEntry, error) {
	principal, err := s.authorize(ctx, guard.OpRead, nil)
	if err != nil {
		return models.JournalEntry{}, err
	}

	return s.storage.Get(ctx, id, principal.UserID)
}

// Update loads the current record, checks ownership and then rewrites the
// content. Concurrent updates of one entry are last-write-wins.
func (s *journalService) Update(ctx context.Context, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	current, err := s.current(ctx, update.ID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	principal, err := s.authorize(ctx, guard.OpUpdate, current)
	if err != nil {
		return models.JournalEntry{}, err
	}

	update.UserID = principal.UserID
	return s.storage.Update(ctx, update)
}

func (s *journalService) Delete(ctx context.Context, id int64) error {
	current, err := s.current(ctx, id)
	if err != nil {
		return err
	}

	principal, err := s.authorize(ctx, guard.OpDelete, current)
	if err != nil {
		return err
	}

	return s.storage.Delete(ctx, id, principal.UserID)
}

// current fetches the record a write targets, scoped to the principal.
func (s *journalService) current(ctx context.Context, id int64) (models.JournalEntry, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return models.JournalEntry{}, err
	}

	return s.storage.Get(ctx, id, principal.UserID)
}
