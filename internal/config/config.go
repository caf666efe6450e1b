// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// read-later client and the development bookmarking server. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database and the downloaded article
	// content directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the development bookmarking server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote bookmarking service endpoint used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	Workers Workers `envPrefix:"WORKERS_"`

	// Sync tunes the synchronization engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

type Storage struct {
	DB DB `envPrefix:"DB_"`

	Files Files `envPrefix:"FILES_"`
}

type App struct {
	// Version is reported by the development server on /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogDir is the directory the client writes its log file to. Empty means
	// next to the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

type Server struct {
	// HTTPAddress is the "host:port" the development server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token, when set, is the bearer token every API request must carry.
	// Env: SERVER_TOKEN
	Token string `env:"TOKEN"`
}

type DB struct {
	// DSN is the SQLite database path (e.g. "/home/user/.read-later/local.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

type Files struct {
	// ContentDir is where downloaded article bodies are written.
	// Env: STORAGE_FILES_CONTENT_DIR
	ContentDir string `env:"CONTENT_DIR"`
}

type Adapter struct {
	// HTTPAddress is the remote service address, either "host:port" or a
	// full base URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout caps a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is sent as a bearer token on every remote call.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

type Workers struct {
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

type Sync struct {
	// ArticlesPerFolder caps how many articles are pulled per folder listing.
	// Env: SYNC_ARTICLES_PER_FOLDER
	ArticlesPerFolder int `env:"ARTICLES_PER_FOLDER"`

	// BatchSize is the number of pending changes replayed per chunk.
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`
}

// GetStructuredConfig loads and merges configuration in the following
// priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
