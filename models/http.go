// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateJournalEntryRequest is the body of POST /api/journal/.
// Owner fields are deliberately absent: the owner always comes from the token.
type CreateJournalEntryRequest struct {
	Content *string `json:"content"`
}

// CreateMoodLogRequest is the body of POST /api/moodlog/.
type CreateMoodLogRequest struct {
	MoodRating *int `json:"mood_rating"`
}
