// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
)

// journalStorage is the default implementation of [JournalStorage].
//
// It is the only place where journal content crosses the plaintext /
// ciphertext boundary: content is sealed with the [crypto.FieldCodec] right
// before it reaches the [JournalRepository] and opened right after it comes
// back. Everything below this type sees ciphertext only.
type journalStorage struct {
	// repository provides all relational database operations
	// against the "journal_entries" table.
	repository JournalRepository

	codec crypto.FieldCodec

	// recorder is told about decryption failures; may be nil.
	recorder DecryptionRecorder

	// now is the clock used for created_at/updated_at.
	now func() time.Time

	logger *logger.Logger
}

// NewJournalStorage constructs a [JournalStorage] over the given repository.
func NewJournalStorage(repository JournalRepository, codec crypto.FieldCodec, recorder DecryptionRecorder, logger *logger.Logger) JournalStorage {
	logger.Debug().Msg("creating journal storage")

	return &journalStorage{
		repository: repository,
		codec:      codec,
		recorder:   recorder,
		now:        utcNow,
		logger:     logger,
	}
}

// Create encrypts the content, stamps both timestamps and persists the
// entry. The returned entry carries the plaintext the caller supplied.
func (s *journalStorage) Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	ciphered, err := s.codec.Encrypt(entry.Content)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("encrypt journal content: %w", err)
	}

	now := s.now()
	stored, err := s.repository.CreateEntry(ctx, models.StoredJournalEntry{
		UserID:    entry.UserID,
		Content:   ciphered,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return models.JournalEntry{}, err
	}

	return models.JournalEntry{
		ID:            stored.ID,
		UserID:        stored.UserID,
		Content:       entry.Content,
		ContentStatus: models.ContentAvailable,
		CreatedAt:     stored.CreatedAt,
		UpdatedAt:     stored.UpdatedAt,
	}, nil
}

// Get loads and decrypts a single owned entry.
func (s *journalStorage) Get(ctx context.Context, id, userID int64) (models.JournalEntry, error) {
	stored, err := s.repository.GetEntry(ctx, id, userID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	return s.open(ctx, stored), nil
}

// List loads and decrypts every entry of the user, newest first. Entries
// that fail to decrypt are returned with placeholder content.
func (s *journalStorage) List(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	stored, err := s.repository.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(stored))
	for _, item := range stored {
		entries = append(entries, s.open(ctx, item))
	}

	return entries, nil
}

// ListSummaries returns entries with the encrypted marker instead of content.
// Nothing is decrypted.
func (s *journalStorage) ListSummaries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	stored, err := s.repository.ListEntryMetadata(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(stored))
	for _, item := range stored {
		entries = append(entries, models.JournalEntry{
			ID:            item.ID,
			UserID:        item.UserID,
			Content:       models.EncryptedContentMarker,
			ContentStatus: models.ContentEncrypted,
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
		})
	}

	return entries, nil
}

// Update re-encrypts new content and refreshes updated_at. When the update
// carries no content the entry is returned unchanged.
func (s *journalStorage) Update(ctx context.Context, update models.JournalEntryUpdate) (models.JournalEntry, error) {
	if update.Content == nil {
		return s.Get(ctx, update.ID, update.UserID)
	}

	ciphered, err := s.codec.Encrypt(*update.Content)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("encrypt journal content: %w", err)
	}

	stored, err := s.repository.UpdateEntry(ctx, models.StoredJournalEntry{
		ID:        update.ID,
		UserID:    update.UserID,
		Content:   ciphered,
		UpdatedAt: s.now(),
	})
	if err != nil {
		return models.JournalEntry{}, err
	}

	return models.JournalEntry{
		ID:            stored.ID,
		UserID:        stored.UserID,
		Content:       *update.Content,
		ContentStatus: models.ContentAvailable,
		CreatedAt:     stored.CreatedAt,
		UpdatedAt:     stored.UpdatedAt,
	}, nil
}

// Delete removes an owned entry.
func (s *journalStorage) Delete(ctx context.Context, id, userID int64) error {
	return s.repository.DeleteEntry(ctx, id, userID)
}

// open decrypts a stored entry. A decryption failure is logged without any
// content or key material and surfaces as placeholder content; the stored
// ciphertext is left untouched.
func (s *journalStorage) open(ctx context.Context, stored models.StoredJournalEntry) models.JournalEntry {
	entry := models.JournalEntry{
		ID:        stored.ID,
		UserID:    stored.UserID,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
	}

	plaintext, err := s.codec.Decrypt(stored.Content)
	if err != nil {
		logger.FromContext(ctx).Error().
			Err(err).
			Str("func", "journalStorage.open").
			Int64("user_id", stored.UserID).
			Int64("entry_id", stored.ID).
			Msg("failed to decrypt journal entry content")

		if s.recorder != nil {
			s.recorder.RecordDecryptionFailure("journal_entry")
		}

		entry.Content = models.ContentUnavailablePlaceholder
		entry.ContentStatus = models.ContentUnavailable
		return entry
	}

	entry.Content = plaintext
	entry.ContentStatus = models.ContentAvailable
	return entry
}

func utcNow() time.Time {
	return time.Now().UTC()
}
