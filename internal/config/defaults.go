// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied to fields left empty by every source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGRPCAddress    = "localhost:9090"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "data/journal.db"
	DefaultTokenIssuer    = "go-mood-journal"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultInsightsTTL    = 5 * time.Minute
	DefaultAuthRateLimit  = 1.0
	DefaultAuthRateBurst  = 5

	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 10 * time.Second
)

// DefaultAllowedOrigins is used when no CORS origin is configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000"}

// applyDefaults fills every zero-valued field that has a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = DefaultGRPCAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	if cfg.Server.AuthRateLimit == 0 {
		cfg.Server.AuthRateLimit = DefaultAuthRateLimit
	}
	if cfg.Server.AuthRateBurst == 0 {
		cfg.Server.AuthRateBurst = DefaultAuthRateBurst
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Cache.InsightsTTL == 0 {
		cfg.Storage.Cache.InsightsTTL = DefaultInsightsTTL
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}
