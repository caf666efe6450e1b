// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/service"
)

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger

	wg sync.WaitGroup
}

// NewSyncWorker runs one sync pass right away, then hands over to the
// periodic job.
func NewSyncWorker(job service.ClientSyncJob, cfg config.ClientWorkers, logger *logger.Logger) Worker {
	return &syncWorker{
		job:      job,
		interval: cfg.SyncInterval,
		logger:   logger,
	}
}

func (s *syncWorker) Run(ctx context.Context) {
	ctx = s.logger.WithContext(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if err := s.job.RunOnce(ctx); err != nil && !errors.Is(err, service.ErrSyncCancelled) {
			s.logger.Err(err).Str("func", "syncWorker.Run").Msg("initial sync failed")
		}
		if ctx.Err() != nil {
			return
		}

		s.logger.Info().Dur("interval", s.interval).Msg("periodic sync started")
		s.job.Start(ctx, s.interval)
	}()
}

func (s *syncWorker) Stop() {
	s.wg.Wait()
	s.job.Stop()
}
