// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mood-journal/models"
)

// UserValidator validates account credentials on register and login.
type UserValidator struct{}

// NewUserValidator constructs a [Validator] for models.User.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks models.User values or pointers.
//
// Default validated fields: Login, Password.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			login := strings.TrimSpace(user.Login)
			if login == "" {
				return fieldError(FieldLogin, ErrEmptyLogin)
			}
			if len(login) > MaxLoginLength {
				return fieldError(FieldLogin, ErrLoginTooLong)
			}
		case FieldPassword:
			if user.Password == "" {
				return fieldError(FieldPassword, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
