// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the terminal client's view of the account endpoints.
// Credentials are validated locally before anything goes over the wire.
type ClientAuthService interface {
	// Register creates the account and keeps the issued token for later calls.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and keeps the issued token for later calls.
	Login(ctx context.Context, user models.User) error

	// Logout forgets the token. It never contacts the server.
	Logout()

	// LoggedIn reports whether a token is held.
	LoggedIn() bool

	// DeleteAccount removes the account on the server and logs out.
	DeleteAccount(ctx context.Context) error
}

// ClientJournalService manages the logged-in user's journal entries.
type ClientJournalService interface {
	List(ctx context.Context) ([]models.JournalEntry, error)
	// ListSummaries lists entries without decrypting them on the server.
	ListSummaries(ctx context.Context) ([]models.JournalEntry, error)
	Create(ctx context.Context, content string) (models.JournalEntry, error)
	Get(ctx context.Context, id int64) (models.JournalEntry, error)
	Update(ctx context.Context, id int64, content string) (models.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
}

// ClientMoodService manages mood logs and reads the derived insights.
type ClientMoodService interface {
	// List returns logs between the calendar days start and end. A nil bound
	// is open.
	List(ctx context.Context, start, end *time.Time) ([]models.MoodLog, error)
	Log(ctx context.Context, rating int) (models.MoodLog, error)
	Delete(ctx context.Context, id int64) error
	Insights(ctx context.Context, start, end *time.Time) (models.MoodInsights, error)
}

// ClientInfoService reports the server build the client talks to.
type ClientInfoService interface {
	ServerVersion(ctx context.Context) (models.VersionResponse, error)
}
