// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
)

// JournalValidator validates journal entries and entry updates.
type JournalValidator struct{}

// NewJournalValidator constructs a [Validator] for journal models.
func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types:
// models.JournalEntry and models.JournalEntryUpdate, as values or pointers.
//
// When fields is empty the default set for the type is validated.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JournalEntry:
		return v.validateEntry(value, fields...)
	case *models.JournalEntry:
		return v.validateEntry(*value, fields...)

	case models.JournalEntryUpdate:
		return v.validateUpdate(value, fields...)
	case *models.JournalEntryUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEntry validates a new entry.
//
// Default validated fields: UserID, Content.
func (v *JournalValidator) validateEntry(entry models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entry.ID <= 0 {
				return fieldError(FieldID, ErrInvalidID)
			}
		case FieldUserID:
			if entry.UserID <= 0 {
				return fieldError(FieldUserID, ErrInvalidUserID)
			}
		case FieldContent:
			if err := validateContent(entry.Content); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate validates a content change.
//
// Default validated fields: ID, UserID, Content. A nil Content is accepted
// only when FieldContent is not requested.
func (v *JournalValidator) validateUpdate(update models.JournalEntryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if update.ID <= 0 {
				return fieldError(FieldID, ErrInvalidID)
			}
		case FieldUserID:
			if update.UserID <= 0 {
				return fieldError(FieldUserID, ErrInvalidUserID)
			}
		case FieldContent:
			if update.Content == nil {
				return fieldError(FieldContent, ErrNoFieldsToUpdate)
			}
			if err := validateContent(*update.Content); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fieldError(FieldContent, ErrEmptyContent)
	}
	if len(content) > MaxContentBytes {
		return fieldError(FieldContent, ErrContentTooLarge)
	}
	return nil
}
