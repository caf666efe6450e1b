package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-read-later/internal/logger"
)

type clientSyncJob struct {
	engine     SyncEngine
	downloader ArticleDownloadService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that syncs on a ticker. downloader
// may be nil. The job is idle until Start is called.
func NewClientSyncJob(engine SyncEngine, downloader ArticleDownloadService) ClientSyncJob {
	return &clientSyncJob{engine: engine, downloader: downloader}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that runs a pass every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.RunOnce(jobCtx); err != nil && !errors.Is(err, ErrSyncCancelled) {
					logger.FromContext(jobCtx).Err(err).Str("func", "clientSyncJob").Msg("sync pass failed")
				}
			}
		}
	}()
}

// RunOnce syncs, cleans up orphaned articles and then downloads missing
// content.
func (j *clientSyncJob) RunOnce(ctx context.Context) error {
	if _, err := j.engine.Sync(ctx); err != nil {
		return err
	}
	if _, err := j.engine.CleanupOrphanedArticles(ctx); err != nil {
		return err
	}
	if j.downloader == nil {
		return nil
	}

	_, err := j.downloader.DownloadPending(ctx)
	return err
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
