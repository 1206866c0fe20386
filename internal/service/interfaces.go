// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates users and manages their tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// DeleteAccount removes the authenticated user with every entry and log
	// they own.
	DeleteAccount(ctx context.Context) error
}

// JournalService exposes journal entries of the authenticated user. The
// owner is always taken from the context; any UserID in the arguments is
// overwritten.
type JournalService interface {
	List(ctx context.Context) ([]models.JournalEntry, error)
	ListSummaries(ctx context.Context) ([]models.JournalEntry, error)
	Create(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	Get(ctx context.Context, id int64) (models.JournalEntry, error)
	Update(ctx context.Context, update models.JournalEntryUpdate) (models.JournalEntry, error)
	Delete(ctx context.Context, id int64) error
}

// MoodLogService exposes mood logs of the authenticated user. Logs cannot be
// updated.
type MoodLogService interface {
	List(ctx context.Context, filter models.MoodLogFilter) ([]models.MoodLog, error)
	Create(ctx context.Context, log models.MoodLog) (models.MoodLog, error)
	Get(ctx context.Context, id int64) (models.MoodLog, error)
	Delete(ctx context.Context, id int64) error
}

// InsightsService summarizes the mood logs of the authenticated user.
type InsightsService interface {
	MoodInsights(ctx context.Context, filter models.MoodLogFilter) (models.MoodInsights, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
