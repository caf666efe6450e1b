package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-read-later/internal/adapter"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/models"
)

func (s *syncEngine) SyncArticles(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)
	var result models.SyncResult

	if err := checkCancelled(ctx); err != nil {
		return result, s.fail(ctx, "sync articles", err)
	}

	steps := []struct {
		name string
		run  func(context.Context, *models.SyncResult) error
	}{
		{"push article adds", s.pushArticleAdds},
		{"push article deletes", s.pushArticleDeletes},
		{"push article moves", s.pushArticleMoves},
		{"push article state changes", s.pushArticleStateChanges},
		{"pull articles", s.pullArticles},
		{"pull liked articles", s.pullLikedArticles},
	}
	for _, step := range steps {
		if err := step.run(ctx, &result); err != nil {
			return result, s.fail(ctx, step.name, err)
		}
	}

	log.Debug().
		Str("func", "syncEngine.SyncArticles").
		Int("added", result.ArticlesAdded).
		Int("deleted", result.ArticlesDeleted).
		Int("moved", result.ArticlesMoved).
		Int("states_changed", result.ArticleStatesChanged).
		Int("pulled", result.ArticlesPulled).
		Int("unlinked", result.ArticlesUnlinked).
		Int("progress_pushed", result.ProgressPushed).
		Msg("article phase finished")

	return result, nil
}

// ── article pushes ────────────────────────────────────────────────────────────

// pushArticleAdds only submits the url. The hydrated article arrives with the
// next pull.
func (s *syncEngine) pushArticleAdds(ctx context.Context, result *models.SyncResult) error {
	adds, err := s.storages.Pending.ListPendingArticleAdds(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, adds, s.batchSize, func(ctx context.Context, add models.PendingArticleAdd) error {
		if _, err := s.articles.Add(ctx, add.URL, add.Title); err != nil {
			return err
		}
		if err := s.storages.Pending.DeletePendingArticleAdd(context.WithoutCancel(ctx), add.URL); err != nil {
			return err
		}

		result.ArticlesAdded++
		return nil
	})
}

func (s *syncEngine) pushArticleDeletes(ctx context.Context, result *models.SyncResult) error {
	deletes, err := s.storages.Pending.ListPendingArticleDeletes(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, deletes, s.batchSize, func(ctx context.Context, del models.PendingArticleDelete) error {
		if err := s.articles.Delete(ctx, del.ArticleID); err != nil && !adapter.IsNotFound(err) {
			return err
		}
		if err := s.storages.Pending.DeletePendingArticleDelete(context.WithoutCancel(ctx), del.ArticleID); err != nil {
			return err
		}

		result.ArticlesDeleted++
		return nil
	})
}

// pushArticleMoves is best effort: a move whose article or destination is
// gone, locally or remotely, is dropped.
func (s *syncEngine) pushArticleMoves(ctx context.Context, result *models.SyncResult) error {
	moves, err := s.storages.Pending.ListPendingArticleMoves(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, moves, s.batchSize, func(ctx context.Context, move models.PendingArticleMove) error {
		log := logger.FromContext(ctx)

		destination, err := s.storages.Entities.GetFolder(ctx, move.DestinationFolderLocalID)
		switch {
		case errors.Is(err, store.ErrFolderNotFound):
			log.Debug().Str("func", "syncEngine.pushArticleMoves").
				Int64("article_id", move.ArticleID).
				Msg("destination folder is gone, move dropped")
		case err != nil:
			return err
		case destination.ServiceID == nil:
			log.Warn().Str("func", "syncEngine.pushArticleMoves").
				Int64("article_id", move.ArticleID).
				Int64("folder_local_id", destination.LocalID).
				Err(ErrFolderNotSynced).
				Msg("move dropped")
		default:
			err = s.articles.Move(ctx, move.ArticleID, *destination.ServiceID)
			if err != nil && !adapter.IsNotFound(err) {
				return err
			}
			if err == nil {
				result.ArticlesMoved++
			}
		}

		return s.storages.Pending.DeletePendingArticleMove(context.WithoutCancel(ctx), move.ArticleID)
	})
}

func (s *syncEngine) pushArticleStateChanges(ctx context.Context, result *models.SyncResult) error {
	changes, err := s.storages.Pending.ListPendingArticleStateChanges(ctx)
	if err != nil {
		return err
	}

	return replay(ctx, changes, s.batchSize, func(ctx context.Context, change models.PendingArticleStateChange) error {
		var err error
		if change.Liked {
			err = s.articles.Like(ctx, change.ArticleID)
		} else {
			err = s.articles.Unlike(ctx, change.ArticleID)
		}
		if err != nil && !adapter.IsNotFound(err) {
			return err
		}
		if err = s.storages.Pending.DeletePendingArticleStateChange(context.WithoutCancel(ctx), change.ArticleID); err != nil {
			return err
		}

		result.ArticleStatesChanged++
		return nil
	})
}

// ── article pull ──────────────────────────────────────────────────────────────

func (s *syncEngine) pullArticles(ctx context.Context, result *models.SyncResult) error {
	folders, err := s.storages.Entities.ListFolders(ctx)
	if err != nil {
		return err
	}

	for _, folder := range folders {
		if folder.ServiceID == nil || !folder.ShouldSync {
			continue
		}
		if err = checkCancelled(ctx); err != nil {
			return err
		}
		if err = s.pullFolderArticles(ctx, folder, result); err != nil {
			return err
		}
	}

	return nil
}

// pullFolderArticles reconciles one folder. Remote calls happen before the
// local transaction is opened.
func (s *syncEngine) pullFolderArticles(ctx context.Context, folder models.Folder, result *models.SyncResult) error {
	log := logger.FromContext(ctx)

	remoteArticles, err := s.articles.List(ctx, *folder.ServiceID, s.articlesPerFolder)
	if err != nil {
		return err
	}

	writes := make([]models.Article, 0, len(remoteArticles))
	listed := make(map[int64]struct{}, len(remoteArticles))
	for _, ra := range remoteArticles {
		listed[ra.ID] = struct{}{}

		local, err := s.storages.Entities.GetArticle(ctx, ra.ID)
		if errors.Is(err, store.ErrArticleNotFound) {
			writes = append(writes, ra.ToArticle(models.Int64Ptr(folder.LocalID)))
			continue
		}
		if err != nil {
			return err
		}

		merged, pushed, err := s.reconcileArticle(ctx, local, ra)
		if err != nil {
			return err
		}
		if pushed {
			result.ProgressPushed++
		}
		merged.FolderLocalID = models.Int64Ptr(folder.LocalID)
		if !sameArticle(local, merged) {
			writes = append(writes, merged)
		}
	}

	unlinked := 0
	err = s.storages.DB.InTx(ctx, func(tx *sql.Tx) error {
		entities := s.storages.Entities.Untracked().WithTx(tx)

		for _, article := range writes {
			if err := entities.AddArticle(ctx, article); err != nil {
				return err
			}
		}

		localArticles, err := entities.ListArticles(ctx, folder.LocalID)
		if err != nil {
			return err
		}
		for _, article := range localArticles {
			if _, ok := listed[article.ID]; ok || article.Liked {
				continue
			}
			if err = entities.MoveArticleToFolder(ctx, article.ID, nil); err != nil {
				return err
			}
			unlinked++
		}

		return nil
	})
	if err != nil {
		return err
	}

	result.ArticlesPulled += len(writes)
	result.ArticlesUnlinked += unlinked

	log.Debug().
		Str("func", "syncEngine.pullFolderArticles").
		Int64("folder_local_id", folder.LocalID).
		Int("listed", len(remoteArticles)).
		Int("written", len(writes)).
		Int("unlinked", unlinked).
		Msg("folder articles pulled")

	return nil
}

// reconcileArticle resolves a hash mismatch. Progress goes to the side with
// the newer timestamp; title, description and liked always follow the
// service. pushed reports whether local progress was sent to the service.
func (s *syncEngine) reconcileArticle(ctx context.Context, local models.Article, remote models.RemoteArticle) (merged models.Article, pushed bool, err error) {
	merged = local
	if local.Hash == remote.Hash {
		return merged, false, nil
	}

	merged.URL = remote.URL
	merged.Title = remote.Title
	merged.Description = remote.Description
	merged.Liked = remote.Liked

	if !local.ReadProgressTimestamp.After(remote.ReadProgressTimestamp) {
		merged.ReadProgress = remote.ReadProgress
		merged.ReadProgressTimestamp = remote.ReadProgressTimestamp
		merged.Hash = remote.Hash
		return merged, false, nil
	}

	updated, err := s.articles.UpdateReadProgress(ctx, local.ID, local.ReadProgress, local.ReadProgressTimestamp)
	if adapter.IsNotFound(err) {
		return merged, false, nil
	}
	if err != nil {
		return models.Article{}, false, err
	}
	merged.Hash = updated.Hash

	return merged, true, nil
}

// pullLikedArticles re-derives liked status from the virtual Liked listing.
// Local likes missing from the listing are only cleared when the listing was
// not truncated.
func (s *syncEngine) pullLikedArticles(ctx context.Context, result *models.SyncResult) error {
	if err := checkCancelled(ctx); err != nil {
		return err
	}

	remoteLiked, err := s.articles.List(ctx, models.LikedFolderServiceID, s.articlesPerFolder)
	if err != nil {
		return err
	}
	complete := len(remoteLiked) < s.articlesPerFolder

	writes := make([]models.Article, 0)
	liked := make(map[int64]struct{}, len(remoteLiked))
	for _, ra := range remoteLiked {
		liked[ra.ID] = struct{}{}

		local, err := s.storages.Entities.GetArticle(ctx, ra.ID)
		if errors.Is(err, store.ErrArticleNotFound) {
			writes = append(writes, ra.ToArticle(nil))
			continue
		}
		if err != nil {
			return err
		}
		if !local.Liked {
			local.Liked = true
			writes = append(writes, local)
		}
	}

	return s.storages.DB.InTx(ctx, func(tx *sql.Tx) error {
		entities := s.storages.Entities.Untracked().WithTx(tx)

		for _, article := range writes {
			if err := entities.AddArticle(ctx, article); err != nil {
				return err
			}
			result.ArticlesPulled++
		}

		if !complete {
			return nil
		}

		localLiked, err := entities.ListLikedArticles(ctx)
		if err != nil {
			return err
		}
		for _, article := range localLiked {
			if _, ok := liked[article.ID]; ok {
				continue
			}
			if err = entities.UnlikeArticle(ctx, article.ID); err != nil {
				return err
			}
			result.ArticlesPulled++
		}

		return nil
	})
}

// ── cleanup ───────────────────────────────────────────────────────────────────

func (s *syncEngine) CleanupOrphanedArticles(ctx context.Context) (models.SyncResult, error) {
	var result models.SyncResult

	orphaned, err := s.storages.Entities.ListOrphanedArticles(ctx)
	if err != nil {
		return result, s.fail(ctx, "cleanup orphaned articles", err)
	}

	err = replay(ctx, orphaned, s.batchSize, func(ctx context.Context, article models.Article) error {
		if err := s.storages.Entities.Untracked().DeleteArticle(ctx, article.ID); err != nil {
			return err
		}
		if article.LocalOnly != nil && article.LocalOnly.AvailableLocally && s.storages.Content != nil {
			if err := s.storages.Content.DeleteContent(ctx, article.ID); err != nil {
				return err
			}
		}

		result.OrphanedArticlesFreed++
		return nil
	})
	if err != nil {
		return result, s.fail(ctx, "cleanup orphaned articles", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "syncEngine.CleanupOrphanedArticles").
		Int("freed", result.OrphanedArticlesFreed).
		Msg("orphaned articles deleted")

	return result, nil
}

func sameArticle(a, b models.Article) bool {
	return a.URL == b.URL &&
		a.Title == b.Title &&
		a.Description == b.Description &&
		a.ReadProgress == b.ReadProgress &&
		a.ReadProgressTimestamp.Equal(b.ReadProgressTimestamp) &&
		a.Hash == b.Hash &&
		a.Liked == b.Liked &&
		sameFolder(a.FolderLocalID, b.FolderLocalID)
}

func sameFolder(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
