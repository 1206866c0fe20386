// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// DeleteUser removes the user together with every journal entry and
	// mood log they own, atomically.
	DeleteUser(ctx context.Context, userID int64) error
}

// JournalRepository is the SQL layer for journal entries. It only ever
// handles ciphertext and never inspects content.
type JournalRepository interface {
	CreateEntry(ctx context.Context, entry models.StoredJournalEntry) (models.StoredJournalEntry, error)
	GetEntry(ctx context.Context, id, userID int64) (models.StoredJournalEntry, error)
	ListEntries(ctx context.Context, userID int64) ([]models.StoredJournalEntry, error)
	ListEntryMetadata(ctx context.Context, userID int64) ([]models.StoredJournalEntry, error)
	UpdateEntry(ctx context.Context, entry models.StoredJournalEntry) (models.StoredJournalEntry, error)
	DeleteEntry(ctx context.Context, id, userID int64) error
}

// MoodLogRepository is the SQL layer for mood logs.
type MoodLogRepository interface {
	CreateMoodLog(ctx context.Context, log models.MoodLog) (models.MoodLog, error)
	GetMoodLog(ctx context.Context, id, userID int64) (models.MoodLog, error)
	ListMoodLogs(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, id, userID int64) error
}

// JournalStorage is the plaintext-facing view of journal entries. It stamps
// timestamps and runs the field codec in both directions.
type JournalStorage interface {
	Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	Get(ctx context.Context, id, userID int64) (models.JournalEntry, error)
	List(ctx context.Context, userID int64) ([]models.JournalEntry, error)

	// ListSummaries returns entries without decrypting them; Content holds
	// [models.EncryptedContentMarker].
	ListSummaries(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	Update(ctx context.Context, update models.JournalEntryUpdate) (models.JournalEntry, error)
	Delete(ctx context.Context, id, userID int64) error
}

// MoodLogStorage stamps and persists mood logs.
type MoodLogStorage interface {
	Create(ctx context.Context, log models.MoodLog) (models.MoodLog, error)
	Get(ctx context.Context, id, userID int64) (models.MoodLog, error)
	List(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error)
	Delete(ctx context.Context, id, userID int64) error
}

// DecryptionRecorder is notified whenever stored content fails to decrypt.
type DecryptionRecorder interface {
	RecordDecryptionFailure(entity string)
}
