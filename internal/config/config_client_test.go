package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/local.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8080"},
	})

	assert.Equal(t, DefaultArticlesPerFolder, cfg.Sync.ArticlesPerFolder)
	assert.Equal(t, DefaultSyncBatchSize, cfg.Sync.BatchSize)
	assert.Equal(t, DefaultAdapterRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultContentDir, cfg.Storage.ContentDir)
	assert.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Storage: Storage{DB: DB{DSN: "/tmp/local.db"}, Files: Files{ContentDir: "/tmp/articles"}},
		Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second, Token: "tok"},
		Workers: Workers{SyncInterval: time.Minute},
		Sync:    Sync{ArticlesPerFolder: 3, BatchSize: 2},
	})

	assert.Equal(t, 3, cfg.Sync.ArticlesPerFolder)
	assert.Equal(t, 2, cfg.Sync.BatchSize)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "tok", cfg.Adapter.Token)
	assert.Equal(t, "/tmp/articles", cfg.Storage.ContentDir)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
			Storage: ClientStorage{DSN: "/tmp/local.db", ContentDir: "/tmp/articles"},
			Workers: ClientWorkers{SyncInterval: time.Minute},
			Sync:    ClientSync{ArticlesPerFolder: 10, BatchSize: 5},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "missing dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero interval", mutate: func(c *ClientConfig) { c.Workers.SyncInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero batch", mutate: func(c *ClientConfig) { c.Sync.BatchSize = 0 }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{App: App{Version: "1.0.0"}})

	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.NoError(t, cfg.validate())
}
