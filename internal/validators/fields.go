// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to specify which fields should be validated.
// They double as the "field" value reported to API clients.
const (
	FieldID         = "id"
	FieldUserID     = "user"
	FieldContent    = "content"
	FieldMoodRating = "mood_rating"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldLogin      = "login"
	FieldPassword   = "password"
)

const (
	// MaxContentBytes caps a single journal entry body.
	MaxContentBytes = 1 << 20

	// MaxLoginLength caps the account login.
	MaxLoginLength = 150
)
