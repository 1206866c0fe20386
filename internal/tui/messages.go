// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-mood-journal/models"
)

// NavigateTo switches the auth flow to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes a login or register attempt.
type LoginResult struct {
	Username string
	Err      error
}

// ServerStatusMsg reports the outcome of a background server health check.
type ServerStatusMsg struct {
	Online    bool
	Version   string
	CheckedAt time.Time
}

type entriesLoadedMsg struct {
	entries []models.JournalEntry
	err     error
}

type entryLoadedMsg struct {
	entry models.JournalEntry
	err   error
}

type entrySavedMsg struct {
	entry   models.JournalEntry
	created bool
	err     error
}

type entryDeletedMsg struct {
	id  int64
	err error
}

type moodLogsLoadedMsg struct {
	logs []models.MoodLog
	err  error
}

type moodLoggedMsg struct {
	log models.MoodLog
	err error
}

type moodDeletedMsg struct {
	id  int64
	err error
}

type insightsLoadedMsg struct {
	insights models.MoodInsights
	err      error
}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
