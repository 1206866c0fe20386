// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's transport to the journal server.
//
// [ServerAdapter] hides the REST protocol from the client services. Non-2xx
// responses are mapped to the sentinel errors in errors.go so callers can
// branch with [errors.Is] (for example [ErrNotFound] for 404).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the journal REST API on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, user models.User) error

	// DeleteAccount removes the account with all of its entries and logs.
	DeleteAccount(ctx context.Context) error

	// ListJournalEntries returns the user's entries newest first. With
	// summary set, content is replaced by the encrypted marker.
	ListJournalEntries(ctx context.Context, summary bool) ([]models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, content string) (models.JournalEntry, error)
	GetJournalEntry(ctx context.Context, id int64) (models.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, id int64, content string) (models.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, id int64) error

	// ListMoodLogs returns logs newest first, optionally bounded by calendar
	// days. A nil bound is open.
	ListMoodLogs(ctx context.Context, start, end *time.Time) ([]models.MoodLog, error)
	CreateMoodLog(ctx context.Context, rating int) (models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, id int64) error

	MoodInsights(ctx context.Context, start, end *time.Time) (models.MoodInsights, error)

	// ServerVersion returns the server's build info. It needs no token.
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
