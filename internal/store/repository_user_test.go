// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(newDBFromSQL(db), logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	now := time.Now().UTC()
	user := models.User{Login: "john", Password: "plain", PasswordHash: "$argon2id$hash", CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,password_hash,created_at) VALUES ($1,$2,$3) RETURNING user_id")).
		WithArgs("john", "$argon2id$hash", now).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Login)
	assert.Empty(t, created.Password, "plaintext password must not leave the repository")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_StampsCreatedAt(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,password_hash,created_at) VALUES ($1,$2,$3) RETURNING user_id")).
		WithArgs("john", "$argon2id$hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	before := time.Now().UTC()
	created, err := repo.CreateUser(testContext(), models.User{Login: "john", PasswordHash: "$argon2id$hash"})
	require.NoError(t, err)

	assert.False(t, created.CreatedAt.Before(before))
	assert.Equal(t, time.UTC, created.CreatedAt.Location())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "postgres", err: pgError(pgerrcode.UniqueViolation)},
		{name: "sqlite", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(testContext(), models.User{Login: "john"})
			assert.ErrorIs(t, err, ErrLoginAlreadyExists)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindUserByLogin(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		now := time.Now().UTC()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, password_hash, created_at FROM users WHERE login = $1")).
			WithArgs("john").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(5, "john", "hash", now))

		user, err := repo.FindUserByLogin(testContext(), "john")
		require.NoError(t, err)
		assert.Equal(t, models.User{UserID: 5, Login: "john", PasswordHash: "hash", CreatedAt: now}, user)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT .* FROM users").WillReturnError(sql.ErrNoRows)

		_, err := repo.FindUserByLogin(testContext(), "ghost")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("SELECT .* FROM users").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

		_, err := repo.FindUserByLogin(testContext(), "john")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestDeleteUser_CascadesInOneTransaction(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_entries WHERE user_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM mood_logs WHERE user_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE user_id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteUser(testContext(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_UnknownUserRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM journal_entries").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM mood_logs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(testContext(), 404)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser_StatementFailureRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM journal_entries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM mood_logs").WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := repo.DeleteUser(testContext(), 7)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}
