package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-read-later/internal/adapter"
	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/ledger"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/service"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/internal/workers"
)

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers

	out    io.Writer
	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the local store and wires the client services around it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, utils.NewUUIDGenerator(), logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}
	downloader := adapter.NewContentDownloader(cfg.Adapter, storages.Content, logger)

	return newApp(storages, remote, downloader, cfg, os.Stdout, logger), nil
}

func newApp(storages *store.ClientStorages, remote adapter.RemoteService, downloader adapter.ContentDownloader,
	cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	ledger.Attach(storages.Entities, storages.Pending)

	services := service.NewClientServices(storages, remote, downloader, cfg.Sync)

	return &App{
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers, logger)),
		out:      out,
		logger:   logger,
	}
}

// Run executes a command from args. With no command it starts the sync
// worker and blocks until ctx is done.
func (a *App) Run(ctx context.Context, args []string) error {
	ctx = a.logger.WithContext(ctx)

	if len(args) == 0 || args[0] == "run" {
		return a.runWorkers(ctx)
	}

	return a.runCommand(ctx, args[0], args[1:])
}

func (a *App) runWorkers(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	a.workers.Run(ctx)
	<-ctx.Done()
	a.workers.Stop()

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
