// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

const (
	// MinMoodRating is the lowest accepted mood rating.
	MinMoodRating = 1
	// MaxMoodRating is the highest accepted mood rating.
	MaxMoodRating = 5
)

// MoodLog is a single numeric mood rating logged by a user.
// Mood logs are immutable: there is no update path.
type MoodLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user"`
	MoodRating int       `json:"mood_rating"`
	Timestamp  time.Time `json:"timestamp"`
}

// OwnerID returns the owner of the log.
func (m MoodLog) OwnerID() int64 {
	return m.UserID
}

// MoodLogFilter narrows a mood log listing.
//
// StartDate and EndDate are compared against the date component of the log
// timestamp (UTC) and are both inclusive. Nil bounds are open.
type MoodLogFilter struct {
	UserID    int64
	StartDate *time.Time
	EndDate   *time.Time
}
