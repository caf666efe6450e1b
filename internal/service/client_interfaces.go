package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-read-later/models"
)

// SyncEngine brings the local cache and the bookmarking service into
// agreement. Every entry point checks ctx between units of work and returns
// an error matching [ErrSyncCancelled] and [context.Canceled] when cancelled.
type SyncEngine interface {
	// Sync runs the folder phase, then the article phase.
	Sync(ctx context.Context) (models.SyncResult, error)

	// SyncFolders pushes pending folder adds and deletes, then pulls the
	// remote folder listing.
	SyncFolders(ctx context.Context) (models.SyncResult, error)

	// SyncArticles pushes pending article adds, deletes, moves and like
	// changes in that order, then pulls every synced folder and the liked
	// listing.
	SyncArticles(ctx context.Context) (models.SyncResult, error)

	// CleanupOrphanedArticles deletes local articles that belong to no folder
	// and are not liked.
	CleanupOrphanedArticles(ctx context.Context) (models.SyncResult, error)
}

// ArticleDownloadService keeps article bodies available offline.
type ArticleDownloadService interface {
	// DownloadPending downloads every article without local-only state and
	// returns how many were stored.
	DownloadPending(ctx context.Context) (int, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically syncs, cleans up orphaned articles and downloads content.
type ClientSyncJob interface {
	// Start launches the background goroutine. It runs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// RunOnce performs a single pass synchronously.
	RunOnce(ctx context.Context) error

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
