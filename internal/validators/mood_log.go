// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-mood-journal/models"
)

// MoodLogValidator validates mood logs and mood log filters.
type MoodLogValidator struct{}

// NewMoodLogValidator constructs a [Validator] for mood models.
func NewMoodLogValidator() Validator {
	return &MoodLogValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
// models.MoodLog and models.MoodLogFilter, as values or pointers.
func (v *MoodLogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.MoodLog:
		return v.validateMoodLog(value, fields...)
	case *models.MoodLog:
		return v.validateMoodLog(*value, fields...)

	case models.MoodLogFilter:
		return v.validateFilter(value, fields...)
	case *models.MoodLogFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateMoodLog validates a new log.
//
// Default validated fields: UserID, MoodRating.
func (v *MoodLogValidator) validateMoodLog(log models.MoodLog, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldMoodRating}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if log.ID <= 0 {
				return fieldError(FieldID, ErrInvalidID)
			}
		case FieldUserID:
			if log.UserID <= 0 {
				return fieldError(FieldUserID, ErrInvalidUserID)
			}
		case FieldMoodRating:
			if log.MoodRating < models.MinMoodRating || log.MoodRating > models.MaxMoodRating {
				return fieldError(FieldMoodRating, ErrInvalidMoodRating)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFilter validates a listing filter.
//
// Default validated field: UserID. A start date after the end date is not
// an error: the listing is simply empty.
func (v *MoodLogValidator) validateFilter(filter models.MoodLogFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if filter.UserID <= 0 {
				return fieldError(FieldUserID, ErrInvalidUserID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
