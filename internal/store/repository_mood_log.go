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

// moodLogRepository is the SQL implementation of [MoodLogRepository]
// against the "mood_logs" table.
type moodLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewMoodLogRepository constructs a [MoodLogRepository].
func NewMoodLogRepository(db *DB, logger *logger.Logger) MoodLogRepository {
	return &moodLogRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateMoodLog inserts a log and returns it with the generated ID.
func (m *moodLogRepository) CreateMoodLog(ctx context.Context, moodLog models.MoodLog) (models.MoodLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateMoodLogQuery(m.builder, moodLog)
	if err != nil {
		return models.MoodLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = m.QueryRowContext(ctx, query, args...).Scan(&moodLog.ID); err != nil {
		if isForeignKeyViolation(err) {
			log.Warn().Str("func", "moodLogRepository.CreateMoodLog").Int64("user_id", moodLog.UserID).Msg("owner does not exist")
			return models.MoodLog{}, ErrNoUserWasFound
		}

		log.Err(err).
			Str("func", "moodLogRepository.CreateMoodLog").
			Int64("user_id", moodLog.UserID).
			Bool("retryable", m.retryable(err)).
			Msg("failed to insert mood log")
		return models.MoodLog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return moodLog, nil
}

// GetMoodLog returns the log with the given id owned by userID, or
// [ErrMoodLogNotFound].
func (m *moodLogRepository) GetMoodLog(ctx context.Context, id, userID int64) (models.MoodLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMoodLogQuery(m.builder, id, userID)
	if err != nil {
		return models.MoodLog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var moodLog models.MoodLog
	err = m.QueryRowContext(ctx, query, args...).Scan(&moodLog.ID, &moodLog.UserID, &moodLog.MoodRating, &moodLog.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MoodLog{}, ErrMoodLogNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "moodLogRepository.GetMoodLog").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to scan mood log row")
		return models.MoodLog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return moodLog, nil
}

// ListMoodLogs returns the owner's logs matching filter, newest first.
func (m *moodLogRepository) ListMoodLogs(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoodLogsQuery(m.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "moodLogRepository.ListMoodLogs").
			Int64("user_id", filter.UserID).
			Msg("failed to execute query for listing mood logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	logs := make([]models.MoodLog, 0, 50)

	for rows.Next() {
		var moodLog models.MoodLog
		if scanErr := rows.Scan(&moodLog.ID, &moodLog.UserID, &moodLog.MoodRating, &moodLog.Timestamp); scanErr != nil {
			log.Err(scanErr).
				Str("func", "moodLogRepository.ListMoodLogs").
				Int64("user_id", filter.UserID).
				Msg("failed to scan mood log row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		logs = append(logs, moodLog)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "moodLogRepository.ListMoodLogs").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return logs, nil
}

// DeleteMoodLog removes an owned log or returns [ErrMoodLogNotFound].
func (m *moodLogRepository) DeleteMoodLog(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMoodLogQuery(m.builder, id, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := m.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "moodLogRepository.DeleteMoodLog").
			Int64("user_id", userID).
			Int64("id", id).
			Msg("failed to delete mood log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMoodLogNotFound
	}

	return nil
}
