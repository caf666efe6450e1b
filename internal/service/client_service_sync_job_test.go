// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-read-later/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncEngine counts passes and can fail them.
type spySyncEngine struct {
	syncs    atomic.Int64
	cleanups atomic.Int64
	err      error
}

func (s *spySyncEngine) Sync(context.Context) (models.SyncResult, error) {
	s.syncs.Add(1)
	return models.SyncResult{}, s.err
}

func (s *spySyncEngine) SyncFolders(context.Context) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (s *spySyncEngine) SyncArticles(context.Context) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

func (s *spySyncEngine) CleanupOrphanedArticles(context.Context) (models.SyncResult, error) {
	s.cleanups.Add(1)
	return models.SyncResult{}, nil
}

type spyDownloader struct {
	calls atomic.Int64
}

func (d *spyDownloader) DownloadPending(context.Context) (int, error) {
	d.calls.Add(1)
	return 0, nil
}

func TestClientSyncJob_RunOnce(t *testing.T) {
	engine := &spySyncEngine{}
	downloader := &spyDownloader{}
	job := NewClientSyncJob(engine, downloader)

	require.NoError(t, job.RunOnce(context.Background()))
	assert.Equal(t, int64(1), engine.syncs.Load())
	assert.Equal(t, int64(1), engine.cleanups.Load())
	assert.Equal(t, int64(1), downloader.calls.Load())
}

func TestClientSyncJob_RunOnce_SyncErrorSkipsRest(t *testing.T) {
	engine := &spySyncEngine{err: assert.AnError}
	downloader := &spyDownloader{}
	job := NewClientSyncJob(engine, downloader)

	assert.ErrorIs(t, job.RunOnce(context.Background()), assert.AnError)
	assert.Zero(t, engine.cleanups.Load())
	assert.Zero(t, downloader.calls.Load())
}

func TestClientSyncJob_RunOnce_WithoutDownloader(t *testing.T) {
	engine := &spySyncEngine{}
	job := NewClientSyncJob(engine, nil)

	require.NoError(t, job.RunOnce(context.Background()))
	assert.Equal(t, int64(1), engine.cleanups.Load())
}

func TestClientSyncJob_Start_RunsOnTicker(t *testing.T) {
	engine := &spySyncEngine{}
	job := NewClientSyncJob(engine, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return engine.syncs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	engine := &spySyncEngine{}
	job := NewClientSyncJob(engine, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := engine.syncs.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, engine.syncs.Load(), "no passes after Stop")
}

func TestClientSyncJob_Stop_IsIdempotent(t *testing.T) {
	job := NewClientSyncJob(&spySyncEngine{}, nil)

	assert.NotPanics(t, func() { job.Stop() })

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		engine := &spySyncEngine{}
		job := NewClientSyncJob(engine, nil)

		job.Start(context.Background(), interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, engine.syncs.Load(), "default interval is minutes long")
	}
}

func TestClientSyncJob_Restart(t *testing.T) {
	engine := &spySyncEngine{}
	job := NewClientSyncJob(engine, nil)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	require.Eventually(t, func() bool { return engine.syncs.Load() > 0 }, time.Second, 5*time.Millisecond)
	before := engine.syncs.Load()

	job.Start(ctx, 10*time.Millisecond)
	require.Eventually(t, func() bool { return engine.syncs.Load() > before }, time.Second, 5*time.Millisecond)
	job.Stop()
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spySyncEngine{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestClientSyncJob_ErrorDoesNotStopJob(t *testing.T) {
	engine := &spySyncEngine{err: assert.AnError}
	job := NewClientSyncJob(engine, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	require.Eventually(t, func() bool { return engine.syncs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	job.Stop()
}
