// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-mood-journal/internal/cache"
	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/crypto"
	"github.com/MKhiriev/go-mood-journal/internal/handler"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/metrics"
	"github.com/MKhiriev/go-mood-journal/internal/server"
	"github.com/MKhiriev/go-mood-journal/internal/service"
	"github.com/MKhiriev/go-mood-journal/internal/store"
	"github.com/MKhiriev/go-mood-journal/models"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mood-journal-server")

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	key, err := crypto.DeriveKey(cfg.App.ContentKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving content key")
	}
	codec, err := crypto.NewFieldCodec(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating content codec")
	}

	appMetrics := metrics.NewMetrics()

	insightsCache, err := cache.NewInsightsCache(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to insights cache")
	}

	storages := store.NewStorages(db, codec, appMetrics, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, insightsCache, crypto.NewPasswordHasher(), appMetrics, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, db, appMetrics, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
