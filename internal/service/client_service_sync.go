// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/adapter"
	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

type syncEngine struct {
	storages *store.ClientStorages
	folders  adapter.FolderClient
	articles adapter.ArticleClient

	articlesPerFolder int
	batchSize         int
}

// NewSyncEngine creates a SyncEngine over the local storages and the remote
// service. Zero or negative limits in cfg fall back to the config defaults.
func NewSyncEngine(storages *store.ClientStorages, remote adapter.RemoteService, cfg config.ClientSync) SyncEngine {
	if cfg.ArticlesPerFolder <= 0 {
		cfg.ArticlesPerFolder = config.DefaultArticlesPerFolder
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = config.DefaultSyncBatchSize
	}

	return &syncEngine{
		storages:          storages,
		folders:           remote.Folders(),
		articles:          remote.Articles(),
		articlesPerFolder: cfg.ArticlesPerFolder,
		batchSize:         cfg.BatchSize,
	}
}

func (s *syncEngine) Sync(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	folders, err := s.SyncFolders(ctx)
	if err != nil {
		return folders, err
	}

	articles, err := s.SyncArticles(ctx)
	result := mergeResults(folders, articles)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("func", "syncEngine.Sync").
		Any("result", result).
		Msg("sync finished")

	return result, nil
}

func (s *syncEngine) SyncFolders(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)
	var result models.SyncResult

	if err := checkCancelled(ctx); err != nil {
		return result, s.fail(ctx, "sync folders", err)
	}
	if err := s.pushFolderAdds(ctx, &result); err != nil {
		return result, s.fail(ctx, "push folder adds", err)
	}
	if err := s.pushFolderDeletes(ctx, &result); err != nil {
		return result, s.fail(ctx, "push folder deletes", err)
	}
	if err := s.pullFolders(ctx, &result); err != nil {
		return result, s.fail(ctx, "pull folders", err)
	}

	log.Debug().
		Str("func", "syncEngine.SyncFolders").
		Int("added", result.FoldersAdded).
		Int("deleted", result.FoldersDeleted).
		Int("pulled", result.FoldersPulled).
		Msg("folder phase finished")

	return result, nil
}

// fail wraps err with the failed step. Cancellation is reported as
// ErrSyncCancelled, a pending-change collision is logged as a broken ledger.
func (s *syncEngine) fail(ctx context.Context, step string, err error) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, ErrSyncCancelled) {
		log.Info().Str("func", "syncEngine").Str("step", step).Msg("sync cancelled")
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.Info().Str("func", "syncEngine").Str("step", step).Msg("sync cancelled")
		return fmt.Errorf("%w: %w", ErrSyncCancelled, err)
	}
	if errors.Is(err, store.ErrDuplicatePendingChange) {
		log.Error().Err(err).Str("func", "syncEngine").Str("step", step).Msg("pending change ledger is inconsistent")
	} else {
		log.Err(err).Str("func", "syncEngine").Str("step", step).Msg("sync failed")
	}

	return fmt.Errorf("%s: %w", step, err)
}

func checkCancelled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSyncCancelled, err)
	}
	return nil
}

// replay applies every item in batches of batchSize, checking for
// cancellation before each item. Items applied before a failure stay applied.
func replay[T any](ctx context.Context, items []T, batchSize int, apply func(ctx context.Context, item T) error) error {
	batches, err := utils.ChunkSlice(items, batchSize)
	if err != nil {
		return err
	}

	for batch, err := range batches {
		if err != nil {
			return err
		}
		for _, item := range batch {
			if err = checkCancelled(ctx); err != nil {
				return err
			}
			if err = apply(ctx, item); err != nil {
				return err
			}
		}
	}

	return nil
}

// ── folder pushes ─────────────────────────────────────────────────────────────

func (s *syncEngine) pushFolderAdds(ctx context.Context, result *models.SyncResult) error {
	adds, err := s.storages.Pending.ListPendingFolderAdds(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, adds, s.batchSize, func(ctx context.Context, add models.PendingFolderAdd) error {
		remote, err := s.folders.Add(ctx, add.Title)
		if errors.Is(err, adapter.ErrDuplicateFolder) {
			remote, err = s.findRemoteFolderByTitle(ctx, add.Title)
		}
		if err != nil {
			return err
		}

		// the service already has the folder, record it even if cancelled now
		ctx = context.WithoutCancel(ctx)
		err = s.storages.DB.InTx(ctx, func(tx *sql.Tx) error {
			entities := s.storages.Entities.Untracked().WithTx(tx)
			pending := s.storages.Pending.WithTx(tx)

			folder, err := entities.GetFolder(ctx, add.FolderLocalID)
			switch {
			case errors.Is(err, store.ErrFolderNotFound):
				return pending.DeletePendingFolderAdd(ctx, add.FolderLocalID)
			case err != nil:
				return err
			}

			// the adopted remote folder may already be bound to another local
			// folder whose remote rename has not been pulled yet
			bound, err := entities.GetFolderByServiceID(ctx, remote.ServiceID)
			switch {
			case errors.Is(err, store.ErrFolderNotFound):
			case err != nil:
				return err
			case bound.LocalID != folder.LocalID:
				return mergeFolder(ctx, entities, pending, folder, bound)
			}

			folder.ServiceID = models.Int64Ptr(remote.ServiceID)
			folder.Position = remote.Position
			folder.ShouldSync = remote.ShouldSync
			if err = entities.UpdateFolder(ctx, folder); err != nil {
				return err
			}

			return pending.DeletePendingFolderAdd(ctx, add.FolderLocalID)
		})
		if err != nil {
			return err
		}

		result.FoldersAdded++
		return nil
	})
}

// findRemoteFolderByTitle resolves a duplicate-title rejection. When several
// remote folders share the title the one with the highest service id wins.
func (s *syncEngine) findRemoteFolderByTitle(ctx context.Context, title string) (models.RemoteFolder, error) {
	remoteFolders, err := s.folders.List(ctx)
	if err != nil {
		return models.RemoteFolder{}, err
	}

	var (
		found models.RemoteFolder
		ok    bool
	)
	for _, rf := range remoteFolders {
		if rf.Title != title {
			continue
		}
		if !ok || rf.ServiceID > found.ServiceID {
			found, ok = rf, true
		}
	}
	if !ok {
		return models.RemoteFolder{}, fmt.Errorf("%w: %q", ErrRemoteFolderNotFound, title)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "syncEngine.findRemoteFolderByTitle").
		Str("title", title).
		Int64("service_id", found.ServiceID).
		Msg("adopting existing remote folder")

	return found, nil
}

func (s *syncEngine) pushFolderDeletes(ctx context.Context, result *models.SyncResult) error {
	deletes, err := s.storages.Pending.ListPendingFolderDeletes(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, deletes, s.batchSize, func(ctx context.Context, del models.PendingFolderDelete) error {
		if err := s.folders.Delete(ctx, del.ServiceID); err != nil && !adapter.IsNotFound(err) {
			return err
		}
		if err := s.storages.Pending.DeletePendingFolderDelete(context.WithoutCancel(ctx), del.ServiceID); err != nil {
			return err
		}

		result.FoldersDeleted++
		return nil
	})
}

// ── folder pull ───────────────────────────────────────────────────────────────

func (s *syncEngine) pullFolders(ctx context.Context, result *models.SyncResult) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	remoteFolders, err := s.folders.List(ctx)
	if err != nil {
		return err
	}
	if err = checkCancelled(ctx); err != nil {
		return err
	}

	return s.storages.DB.InTx(ctx, func(tx *sql.Tx) error {
		entities := s.storages.Entities.Untracked().WithTx(tx)
		pending := s.storages.Pending.WithTx(tx)

		localFolders, err := entities.ListFolders(ctx)
		if err != nil {
			return err
		}

		remoteByID := make(map[int64]models.RemoteFolder, len(remoteFolders))
		for _, rf := range remoteFolders {
			remoteByID[rf.ServiceID] = rf
		}

		localByServiceID := make(map[int64]models.Folder, len(localFolders))
		localByTitle := make(map[string]models.Folder, len(localFolders))
		for _, folder := range localFolders {
			localByTitle[folder.Title] = folder
			if folder.ServiceID == nil || folder.IsWellKnown() {
				continue
			}

			rf, ok := remoteByID[*folder.ServiceID]
			if ok && rf.ShouldSync {
				localByServiceID[*folder.ServiceID] = folder
				continue
			}

			if err = deleteFolderFromRemote(ctx, entities, pending, folder); err != nil {
				return err
			}
			delete(localByTitle, folder.Title)
			result.FoldersPulled++
		}

		var (
			updates []models.Folder
			fresh   []models.RemoteFolder
		)
		for _, rf := range remoteFolders {
			if !rf.ShouldSync || rf.ServiceID < 0 {
				continue
			}

			local, ok := localByServiceID[rf.ServiceID]
			if !ok {
				fresh = append(fresh, rf)
				continue
			}
			if local.Title == rf.Title && local.Position == rf.Position {
				continue
			}
			local.Title = rf.Title
			local.Position = rf.Position
			local.ShouldSync = rf.ShouldSync
			updates = append(updates, local)
		}

		if err = applyFolderUpdates(ctx, entities, pending, updates, localByTitle); err != nil {
			return err
		}
		result.FoldersPulled += len(updates)

		for _, rf := range fresh {
			// an unsynced local folder with the same title is the same folder
			if local, ok := localByTitle[rf.Title]; ok && local.ServiceID == nil {
				local.ServiceID = models.Int64Ptr(rf.ServiceID)
				local.Position = rf.Position
				local.ShouldSync = rf.ShouldSync
				if err = entities.UpdateFolder(ctx, local); err != nil {
					return err
				}
				if err = pending.DeletePendingFolderAdd(ctx, local.LocalID); err != nil {
					return err
				}
				result.FoldersPulled++
				continue
			}

			if _, err = entities.AddFolder(ctx, rf.ToFolder()); err != nil {
				return err
			}
			result.FoldersPulled++
		}

		return nil
	})
}

// applyFolderUpdates writes remote titles and positions onto bound local
// folders. Titles are unique, so every renamed folder first takes a
// temporary title; this lets the service swap or rotate titles. An unsynced
// local folder holding a wanted title is merged into the bound one.
func applyFolderUpdates(ctx context.Context, entities store.EntityStore, pending store.PendingChangeStore, updates []models.Folder, localByTitle map[string]models.Folder) error {
	current := make(map[int64]string, len(localByTitle))
	for title, folder := range localByTitle {
		current[folder.LocalID] = title
	}

	var renamed []models.Folder
	for _, folder := range updates {
		if current[folder.LocalID] == folder.Title {
			if err := entities.UpdateFolder(ctx, folder); err != nil {
				return err
			}
			continue
		}

		if holder, ok := localByTitle[folder.Title]; ok && holder.ServiceID == nil {
			if err := mergeFolder(ctx, entities, pending, holder, folder); err != nil {
				return err
			}
			delete(localByTitle, folder.Title)
		}

		parked := folder
		parked.Title = fmt.Sprintf("\x00%d", folder.LocalID)
		if err := entities.UpdateFolder(ctx, parked); err != nil {
			return err
		}
		renamed = append(renamed, folder)
	}

	for _, folder := range renamed {
		if err := entities.UpdateFolder(ctx, folder); err != nil {
			return err
		}
	}

	return nil
}

// mergeFolder folds an unsynced local folder into the bound folder that
// stands for the same remote folder. Its articles and the pending moves
// targeting it are re-pointed, then the unsynced row and its pending add
// are dropped.
func mergeFolder(ctx context.Context, entities store.EntityStore, pending store.PendingChangeStore, from, into models.Folder) error {
	articles, err := entities.ListArticles(ctx, from.LocalID)
	if err != nil {
		return err
	}
	for _, article := range articles {
		if err = entities.MoveArticleToFolder(ctx, article.ID, models.Int64Ptr(into.LocalID)); err != nil {
			return err
		}
	}

	moves, err := pending.ListPendingArticleMovesToFolder(ctx, from.LocalID)
	if err != nil {
		return err
	}
	for _, move := range moves {
		if err = pending.DeletePendingArticleMove(ctx, move.ArticleID); err != nil {
			return err
		}
		move.DestinationFolderLocalID = into.LocalID
		if err = pending.CreatePendingArticleMove(ctx, move); err != nil {
			return err
		}
	}

	if err = pending.DeletePendingFolderAdd(ctx, from.LocalID); err != nil {
		return err
	}
	if err = entities.DeleteFolder(ctx, from.LocalID); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "syncEngine.mergeFolder").
		Int64("from_local_id", from.LocalID).
		Int64("into_local_id", into.LocalID).
		Int("articles", len(articles)).
		Int("moves", len(moves)).
		Msg("unsynced folder merged into bound folder")

	return nil
}

// deleteFolderFromRemote removes a folder the service no longer has. Pending
// moves into it are dropped first since they can never be applied.
func deleteFolderFromRemote(ctx context.Context, entities store.EntityStore, pending store.PendingChangeStore, folder models.Folder) error {
	moves, err := pending.ListPendingArticleMovesToFolder(ctx, folder.LocalID)
	if err != nil {
		return err
	}
	for _, move := range moves {
		if err = pending.DeletePendingArticleMove(ctx, move.ArticleID); err != nil {
			return err
		}
	}

	if err = entities.DeleteFolder(ctx, folder.LocalID); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "syncEngine.deleteFolderFromRemote").
		Int64("local_id", folder.LocalID).
		Int("dropped_moves", len(moves)).
		Msg("folder removed remotely, deleted locally")

	return nil
}

func mergeResults(a, b models.SyncResult) models.SyncResult {
	return models.SyncResult{
		FoldersAdded:          a.FoldersAdded + b.FoldersAdded,
		FoldersDeleted:        a.FoldersDeleted + b.FoldersDeleted,
		FoldersPulled:         a.FoldersPulled + b.FoldersPulled,
		ArticlesAdded:         a.ArticlesAdded + b.ArticlesAdded,
		ArticlesDeleted:       a.ArticlesDeleted + b.ArticlesDeleted,
		ArticlesMoved:         a.ArticlesMoved + b.ArticlesMoved,
		ArticleStatesChanged:  a.ArticleStatesChanged + b.ArticleStatesChanged,
		ArticlesPulled:        a.ArticlesPulled + b.ArticlesPulled,
		ArticlesUnlinked:      a.ArticlesUnlinked + b.ArticlesUnlinked,
		ProgressPushed:        a.ProgressPushed + b.ProgressPushed,
		OrphanedArticlesFreed: a.OrphanedArticlesFreed + b.OrphanedArticlesFreed,
	}
}
