// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
)

// journalRepository is the SQL implementation of [JournalRepository]. It
// reads and writes the "journal_entries" table; content is passed through
// as an opaque ciphertext string.
//
// Every query is scoped by both id and user_id, so a record owned by another
// user is indistinguishable from a missing one.
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository].
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry inserts a new entry and returns it with the generated ID.
func (j *journalRepository) CreateEntry(ctx context.Context, entry models.StoredJournalEntry) (models.StoredJournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateEntryQuery(j.builder, entry)
	if err != nil {
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = j.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		if isForeignKeyViolation(err) {
			log.Warn().Str("func", "journalRepository.CreateEntry").Int64("user_id", entry.UserID).Msg("owner does not exist")
			return models.StoredJournalEntry{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "journalRepository.CreateEntry").
			Int64("user_id", entry.UserID).
			Bool("retryable", j.retryable(err)).
			Msg("failed to insert journal entry")
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entry, nil
}

// GetEntry returns the entry with the given id owned by userID, or
// [ErrJournalEntryNotFound].
func (j *journalRepository) GetEntry(ctx context.Context, id, userID int64) (models.StoredJournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(j.builder, id, userID)
	if err != nil {
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entry models.StoredJournalEntry
	err = j.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredJournalEntry{}, ErrJournalEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.GetEntry").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to scan journal entry row")
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries returns every entry of userID, newest first.
func (j *journalRepository) ListEntries(ctx context.Context, userID int64) ([]models.StoredJournalEntry, error) {
	return j.list(ctx, userID, journalEntryColumns, func(rows *sql.Rows, entry *models.StoredJournalEntry) error {
		return rows.Scan(&entry.ID, &entry.UserID, &entry.Content, &entry.CreatedAt, &entry.UpdatedAt)
	})
}

// ListEntryMetadata is ListEntries without the content column.
func (j *journalRepository) ListEntryMetadata(ctx context.Context, userID int64) ([]models.StoredJournalEntry, error) {
	return j.list(ctx, userID, journalMetaColumns, func(rows *sql.Rows, entry *models.StoredJournalEntry) error {
		return rows.Scan(&entry.ID, &entry.UserID, &entry.CreatedAt, &entry.UpdatedAt)
	})
}

func (j *journalRepository) list(
	ctx context.Context,
	userID int64,
	columns []string,
	scan func(*sql.Rows, *models.StoredJournalEntry) error,
) ([]models.StoredJournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(j.builder, userID, columns)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := j.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.list").
			Int64("user_id", userID).
			Msg("failed to execute query for listing journal entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.StoredJournalEntry, 0, 50)

	for rows.Next() {
		var entry models.StoredJournalEntry
		if scanErr := scan(rows, &entry); scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.list").
				Int64("user_id", userID).
				Msg("failed to scan journal entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "journalRepository.list").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateEntry overwrites content and updated_at of an owned entry. The
// returned record carries the stored created_at.
func (j *journalRepository) UpdateEntry(ctx context.Context, entry models.StoredJournalEntry) (models.StoredJournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEntryQuery(j.builder, entry)
	if err != nil {
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = j.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredJournalEntry{}, ErrJournalEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.UpdateEntry").
			Int64("user_id", entry.UserID).
			Int64("id", entry.ID).
			Msg("failed to update journal entry")
		return models.StoredJournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// DeleteEntry removes an owned entry. Zero affected rows means the entry
// does not exist for this user.
func (j *journalRepository) DeleteEntry(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(j.builder, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := j.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeleteEntry").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}
