// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",
		"APP_LOG_DIR": "/var/log/read-later",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "15s",
		"SERVER_TOKEN":           "server-token",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_TOKEN":           "client-token",

		"WORKERS_SYNC_INTERVAL": "5m",

		"SYNC_ARTICLES_PER_FOLDER": "120",
		"SYNC_BATCH_SIZE":          "25",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DATABASE_URI":   "/var/lib/read-later/local.db",
		"STORAGE_FILES_CONTENT_DIR": "/var/lib/read-later/articles",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/log/read-later", cfg.App.LogDir)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "server-token", cfg.Server.Token)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "client-token", cfg.Adapter.Token)

	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, 120, cfg.Sync.ArticlesPerFolder)
	assert.Equal(t, 25, cfg.Sync.BatchSize)

	assert.Equal(t, "/var/lib/read-later/local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/read-later/articles", cfg.Storage.Files.ContentDir)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"WORKERS_SYNC_INTERVAL": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "seconds", value: "45s", expected: 45 * time.Second},
		{name: "minutes", value: "10m", expected: 10 * time.Minute},
		{name: "compound", value: "1h30m", expected: 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",
		"APP_LOG_DIR",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_TOKEN",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_TOKEN",

		"WORKERS_SYNC_INTERVAL",

		"SYNC_ARTICLES_PER_FOLDER",
		"SYNC_BATCH_SIZE",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_FILES_CONTENT_DIR",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
