// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/adapter"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/validators"
	"github.com/MKhiriev/go-mood-journal/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user); err != nil {
		return err
	}

	if err := a.adapter.Register(ctx, user); err != nil {
		return wrapAuthError(ErrRegisterOnServer, err)
	}

	a.logger.Info().Str("login", user.Login).Msg("registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) error {
	if err := a.validator.Validate(ctx, user); err != nil {
		return err
	}

	if err := a.adapter.Login(ctx, user); err != nil {
		return wrapAuthError(ErrLoginOnServer, err)
	}

	a.logger.Info().Str("login", user.Login).Msg("logged in")
	return nil
}

func (a *clientAuthService) Logout() {
	a.adapter.SetToken("")
}

func (a *clientAuthService) LoggedIn() bool {
	return a.adapter.Token() != ""
}

func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	if !a.LoggedIn() {
		return ErrUnauthenticated
	}

	if err := a.adapter.DeleteAccount(ctx); err != nil {
		return mapAdapterError(err)
	}

	a.Logout()
	return nil
}

// wrapAuthError keeps well-known rejections (wrong password, taken login)
// as they are and wraps everything else in op.
func wrapAuthError(op, err error) error {
	mapped := mapAdapterError(err)

	var fieldErr *validators.FieldError
	if mapped != err || errors.As(mapped, &fieldErr) {
		return mapped
	}
	return fmt.Errorf("%w: %w", op, err)
}
