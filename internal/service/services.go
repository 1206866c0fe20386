// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-mood-journal/internal/cache"
	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
)

type Services struct {
	AuthService     AuthService
	JournalService  JournalService
	MoodLogService  MoodLogService
	InsightsService InsightsService
	AppInfoService  AppInfoService
}

// NewServices wires the server services. Journal and mood log services are
// wrapped with input validation.
func NewServices(
	storages *store.Storages,
	insightsCache cache.InsightsCache,
	hasher crypto.PasswordHasher,
	recorder CacheRecorder,
	cfg config.App,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg, logger),
		JournalService:  NewJournalValidationService().Wrap(NewJournalService(storages.JournalStorage, logger)),
		MoodLogService:  NewMoodLogValidationService().Wrap(NewMoodLogService(storages.MoodLogStorage, insightsCache, logger)),
		InsightsService: NewInsightsService(storages.MoodLogStorage, insightsCache, recorder, logger),
		AppInfoService:  appInfo,
	}, nil
}
