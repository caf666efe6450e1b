package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when a source leaves a value unset.
const (
	DefaultArticlesPerFolder     = 120
	DefaultSyncBatchSize         = 25
	DefaultAdapterRequestTimeout = 30 * time.Second
	DefaultSyncInterval          = 5 * time.Minute
	DefaultContentDir            = "articles"
)

type ClientApp struct {
	LogDir string
}

// ClientAdapter holds the remote endpoint settings used by the client.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

type ClientStorage struct {
	// DSN is the SQLite database path.
	DSN string
	// ContentDir receives downloaded article bodies.
	ContentDir string
}

type ClientWorkers struct {
	SyncInterval time.Duration
}

type ClientSync struct {
	ArticlesPerFolder int
	BatchSize         int
}

// ClientConfig is the client runtime view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Sync    ClientSync
}

// GetClientConfig loads the merged structured config, maps the fields the
// client needs, fills defaults and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{LogDir: cfg.App.LogDir},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DSN:        cfg.Storage.DB.DSN,
			ContentDir: cfg.Storage.Files.ContentDir,
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Sync: ClientSync{
			ArticlesPerFolder: cfg.Sync.ArticlesPerFolder,
			BatchSize:         cfg.Sync.BatchSize,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Storage.ContentDir == "" {
		cfg.Storage.ContentDir = DefaultContentDir
	}
	if cfg.Sync.ArticlesPerFolder == 0 {
		cfg.Sync.ArticlesPerFolder = DefaultArticlesPerFolder
	}
	if cfg.Sync.BatchSize == 0 {
		cfg.Sync.BatchSize = DefaultSyncBatchSize
	}
}
