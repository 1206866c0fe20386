// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-mood-journal/models"
)

const (
	usersTable          = "users"
	journalEntriesTable = "journal_entries"
	moodLogsTable       = "mood_logs"
)

var (
	userColumns         = []string{"user_id", "login", "password_hash", "created_at"}
	journalEntryColumns = []string{"id", "user_id", "content", "created_at", "updated_at"}
	journalMetaColumns  = []string{"id", "user_id", "created_at", "updated_at"}
	moodLogColumns      = []string{"id", "user_id", "mood_rating", timestampColumn}
)

// timestampColumn is quoted because TIMESTAMP is a type keyword.
const timestampColumn = `"timestamp"`

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

// buildDeleteUserQueries returns the ordered statements of an account
// removal: owned rows first, the user row last.
func buildDeleteUserQueries(b sq.StatementBuilderType, userID int64) []sq.Sqlizer {
	return []sq.Sqlizer{
		b.Delete(journalEntriesTable).Where(sq.Eq{"user_id": userID}),
		b.Delete(moodLogsTable).Where(sq.Eq{"user_id": userID}),
		b.Delete(usersTable).Where(sq.Eq{"user_id": userID}),
	}
}

// ---------------------------------------------------------------------------
// journal entries
// ---------------------------------------------------------------------------

func buildCreateEntryQuery(b sq.StatementBuilderType, entry models.StoredJournalEntry) (string, []any, error) {
	return b.Insert(journalEntriesTable).
		Columns("user_id", "content", "created_at", "updated_at").
		Values(entry.UserID, string(entry.Content), entry.CreatedAt, entry.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetEntryQuery(b sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return b.Select(journalEntryColumns...).
		From(journalEntriesTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

func buildListEntriesQuery(b sq.StatementBuilderType, userID int64, columns []string) (string, []any, error) {
	return b.Select(columns...).
		From(journalEntriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildUpdateEntryQuery(b sq.StatementBuilderType, entry models.StoredJournalEntry) (string, []any, error) {
	return b.Update(journalEntriesTable).
		Set("content", string(entry.Content)).
		Set("updated_at", entry.UpdatedAt).
		Where(sq.Eq{"id": entry.ID, "user_id": entry.UserID}).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildDeleteEntryQuery(b sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return b.Delete(journalEntriesTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// ---------------------------------------------------------------------------
// mood logs
// ---------------------------------------------------------------------------

func buildCreateMoodLogQuery(b sq.StatementBuilderType, log models.MoodLog) (string, []any, error) {
	return b.Insert(moodLogsTable).
		Columns("user_id", "mood_rating", timestampColumn).
		Values(log.UserID, log.MoodRating, log.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetMoodLogQuery(b sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return b.Select(moodLogColumns...).
		From(moodLogsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildListMoodLogsQuery selects the owner's logs, optionally bounded by
// whole UTC days: timestamp >= start 00:00 and timestamp < (end+1) 00:00.
func buildListMoodLogsQuery(b sq.StatementBuilderType, filter models.MoodLogFilter) (string, []any, error) {
	query := b.Select(moodLogColumns...).
		From(moodLogsTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if filter.StartDate != nil {
		query = query.Where(sq.GtOrEq{timestampColumn: startOfDay(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		query = query.Where(sq.Lt{timestampColumn: startOfDay(*filter.EndDate).AddDate(0, 0, 1)})
	}

	return query.OrderBy(timestampColumn+" DESC", "id DESC").ToSql()
}

func buildDeleteMoodLogQuery(b sq.StatementBuilderType, id, userID int64) (string, []any, error) {
	return b.Delete(moodLogsTable).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// startOfDay truncates t to midnight of its UTC calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
