// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// configs yields the defaults only.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultGRPCAddress, cfg.Server.GRPCAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultInsightsTTL, cfg.Storage.Cache.InsightsTTL)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Empty(t, cfg.Storage.Cache.RedisAddress, "cache stays disabled by default")
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_CONTENT_KEY", "env-content")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/journal")
	t.Setenv("STORAGE_CACHE_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-content", b.configs[0].App.ContentKey)
	assert.Equal(t, "postgres://localhost/journal", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", b.configs[0].Storage.Cache.RedisAddress)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, b.configs[0].Server.AllowedOrigins)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"token_issuer": "json-issuer", "token_duration": "2h"},
		"server": map[string]any{"http_address": "0.0.0.0:8000"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, b.configs[1].App.TokenDuration)
	assert.Equal(t, "0.0.0.0:8000", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Valid(t *testing.T) {
	cfg, err := loadStructuredConfig([]string{
		"-content-key", "secret-content",
		"-token-sign-key", "secret-sign",
		"-d", "postgres://localhost/journal",
		"-a", "127.0.0.1:8081",
	})
	require.NoError(t, err)

	assert.Equal(t, "secret-content", cfg.App.ContentKey)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/journal", cfg.Storage.DB.DSN)
}

func TestLoadStructuredConfig_RequiresSecrets(t *testing.T) {
	_, err := loadStructuredConfig([]string{"-token-sign-key", "x"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	_, err = loadStructuredConfig([]string{"-content-key", "x"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestLoadClientConfig(t *testing.T) {
	cfg, err := loadClientConfig([]string{"-server", "http://journal.test"})
	require.NoError(t, err)

	assert.Equal(t, "http://journal.test", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
}

func TestClientConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ClientConfig{}).validate(), ErrInvalidAdapterConfigs)
	assert.NoError(t, (&ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: time.Second}}).validate())
}

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{App: App{ContentKey: "c", TokenSignKey: "s"}}
		cfg.applyDefaults()
		return cfg
	}

	require.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = "  "
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Server.RequestTimeout = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.Server.AuthRateBurst = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.TokenDuration = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}
