package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-read-later/internal/adapter"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/models"
)

type articleDownloadService struct {
	entities   store.EntityStore
	downloader adapter.ContentDownloader
}

func NewArticleDownloadService(entities store.EntityStore, downloader adapter.ContentDownloader) ArticleDownloadService {
	return &articleDownloadService{
		entities:   entities,
		downloader: downloader,
	}
}

// DownloadPending stops at the first failure other than a missing page.
// Missing pages are recorded as unavailable so they are not retried.
func (d *articleDownloadService) DownloadPending(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	articles, err := d.entities.ListArticlesWithoutLocalState(ctx)
	if err != nil {
		return 0, err
	}

	downloaded := 0
	for _, article := range articles {
		if err = checkCancelled(ctx); err != nil {
			return downloaded, err
		}

		state, err := d.downloader.DownloadArticle(ctx, article)
		switch {
		case errors.Is(err, adapter.ErrNotFound), errors.Is(err, adapter.ErrEmptyContent):
			log.Debug().
				Str("func", "articleDownloadService.DownloadPending").
				Int64("article_id", article.ID).
				Err(err).
				Msg("article marked unavailable")
			state = models.LocalOnlyState{ArticleID: article.ID, ArticleUnavailable: true}
		case err != nil:
			log.Err(err).
				Str("func", "articleDownloadService.DownloadPending").
				Int64("article_id", article.ID).
				Msg("article download failed")
			return downloaded, err
		default:
			downloaded++
		}

		// the body is already on disk, record it even if cancelled now
		if err = d.entities.SetLocalOnlyState(context.WithoutCancel(ctx), state); err != nil {
			return downloaded, err
		}
	}

	return downloaded, nil
}
