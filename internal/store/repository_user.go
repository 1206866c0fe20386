// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and removal against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("login already exists")
			return models.User{}, ErrLoginAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByLogin retrieves the user with the given login.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByLoginQuery(r.db.builder, login)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&found.UserID, &found.Login, &found.PasswordHash, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// DeleteUser removes the account and everything it owns in one transaction.
// Journal entries and mood logs are deleted explicitly before the user row,
// so the cascade holds even on a schema without foreign key enforcement.
//
// Returns [ErrNoUserWasFound] if the user row did not exist; in that case
// the transaction is rolled back.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	statements := buildDeleteUserQueries(r.db.builder, userID)

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		var affected int64
		for _, statement := range statements {
			query, args, err := statement.ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			result, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				log.Err(err).
					Str("func", "*userRepository.DeleteUser").
					Int64("user_id", userID).
					Msg("failed to execute delete statement")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}

			affected, err = result.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		// affected holds the count of the last statement: the users row
		if affected == 0 {
			return ErrNoUserWasFound
		}

		log.Info().Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("user deleted")
		return nil
	})
}
