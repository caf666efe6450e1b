// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate rejects values no source could legitimately produce. Missing
// values are checked later, by the role-specific views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.ArticlesPerFolder < 0 || cfg.Sync.BatchSize < 0 {
		return ErrInvalidSyncConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 || cfg.Workers.SyncInterval < 0 {
		return ErrInvalidDurationConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.ContentDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Sync.ArticlesPerFolder <= 0 || cfg.Sync.BatchSize <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
