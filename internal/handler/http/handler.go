// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-mood-journal/internal/config"
	"github.com/MKhiriev/go-mood-journal/internal/logger"
	"github.com/MKhiriev/go-mood-journal/internal/metrics"
	"github.com/MKhiriev/go-mood-journal/internal/service"
)

// Handler serves the journal REST API on top of the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	cfg      config.Server

	authLimiter *rateLimiter

	logger *logger.Logger
}

// NewHandler builds a Handler. metrics may be nil, in which case requests are
// not instrumented and /metrics is not mounted.
func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     m,
		cfg:         cfg,
		authLimiter: newRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		logger:      logger,
	}
}
