package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
)

var ErrEmptyArticleURL = errors.New("article url is empty")

func (s *entityStore) AddArticle(ctx context.Context, article models.Article) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	if err := models.ValidateReadProgress(article.ReadProgress); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	_, err := s.querier().ExecContext(ctx, upsertArticle,
		article.ID,
		article.URL,
		article.Title,
		article.Description,
		article.ReadProgress,
		article.ReadProgressTimestamp.UTC(),
		article.Hash,
		article.Liked,
		nullableInt64(article.FolderLocalID),
	)
	if err != nil {
		if s.db.errorClassificator.IsForeignKeyViolation(err) {
			return ErrFolderNotFound
		}
		log.Err(err).
			Str("func", "entityStore.AddArticle").
			Int64("article_id", article.ID).
			Msg("failed to upsert article")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *entityStore) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Article{}, err
	}
	return getArticleByID(ctx, s.querier(), id)
}

func (s *entityStore) ListArticles(ctx context.Context, folderLocalID int64) ([]models.Article, error) {
	return s.listArticles(ctx, "entityStore.ListArticles", articleFilter{folderLocalID: &folderLocalID})
}

func (s *entityStore) ListLikedArticles(ctx context.Context) ([]models.Article, error) {
	liked := true
	return s.listArticles(ctx, "entityStore.ListLikedArticles", articleFilter{liked: &liked})
}

// ListOrphanedArticles returns articles that belong to no folder and are not
// liked.
func (s *entityStore) ListOrphanedArticles(ctx context.Context) ([]models.Article, error) {
	return s.listArticles(ctx, "entityStore.ListOrphanedArticles", articleFilter{orphaned: true})
}

func (s *entityStore) ListArticlesWithoutLocalState(ctx context.Context) ([]models.Article, error) {
	return s.listArticles(ctx, "entityStore.ListArticlesWithoutLocalState", articleFilter{withoutLocalState: true})
}

func (s *entityStore) listArticles(ctx context.Context, funcName string, filter articleFilter) ([]models.Article, error) {
	if err := s.db.checkReady(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	query, args, err := buildListArticlesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.querier().QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query articles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		articles = append(articles, article)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return articles, nil
}

func (s *entityStore) UpdateArticle(ctx context.Context, article models.Article) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	if err := models.ValidateReadProgress(article.ReadProgress); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	result, err := s.querier().ExecContext(ctx, updateArticle,
		article.URL,
		article.Title,
		article.Description,
		article.ReadProgress,
		article.ReadProgressTimestamp.UTC(),
		article.Hash,
		article.Liked,
		nullableInt64(article.FolderLocalID),
		article.ID,
	)
	if err != nil {
		if s.db.errorClassificator.IsForeignKeyViolation(err) {
			return ErrFolderNotFound
		}
		log.Err(err).
			Str("func", "entityStore.UpdateArticle").
			Int64("article_id", article.ID).
			Msg("failed to update article")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrArticleNotFound)
}

func (s *entityStore) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	return s.db.inTx(ctx, s.tx, "entityStore.DeleteArticle", func(tx *sql.Tx) error {
		article, err := getArticleByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, deleteArticle, id); err != nil {
			log.Err(err).
				Str("func", "entityStore.DeleteArticle").
				Int64("article_id", id).
				Msg("failed to delete article")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return s.notify(func(o EntityObserver) error { return o.ArticleDeleted(ctx, tx, article) })
	})
}

func (s *entityStore) MoveArticleToFolder(ctx context.Context, id int64, folderLocalID *int64) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	return s.db.inTx(ctx, s.tx, "entityStore.MoveArticleToFolder", func(tx *sql.Tx) error {
		article, err := getArticleByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if folderLocalID != nil {
			found, err := exists(ctx, tx, folderExists, *folderLocalID)
			if err != nil {
				return err
			}
			if !found {
				return ErrFolderNotFound
			}
			if article.InFolder(*folderLocalID) {
				return nil
			}
		}

		if _, err = tx.ExecContext(ctx, setArticleFolder, nullableInt64(folderLocalID), id); err != nil {
			log.Err(err).
				Str("func", "entityStore.MoveArticleToFolder").
				Int64("article_id", id).
				Msg("failed to move article")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		article.FolderLocalID = folderLocalID

		if folderLocalID == nil {
			return nil
		}

		return s.notify(func(o EntityObserver) error {
			return o.ArticleMovedToFolder(ctx, tx, article, *folderLocalID)
		})
	})
}

func (s *entityStore) LikeArticle(ctx context.Context, id int64) error {
	return s.setLiked(ctx, id, true)
}

func (s *entityStore) UnlikeArticle(ctx context.Context, id int64) error {
	return s.setLiked(ctx, id, false)
}

// setLiked is a no-op, without notifications, when the article already has
// the requested value.
func (s *entityStore) setLiked(ctx context.Context, id int64, liked bool) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	return s.db.inTx(ctx, s.tx, "entityStore.setLiked", func(tx *sql.Tx) error {
		article, err := getArticleByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if article.Liked == liked {
			return nil
		}

		if _, err = tx.ExecContext(ctx, setArticleLiked, liked, id); err != nil {
			log.Err(err).
				Str("func", "entityStore.setLiked").
				Int64("article_id", id).
				Bool("liked", liked).
				Msg("failed to change like status")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		article.Liked = liked

		return s.notify(func(o EntityObserver) error { return o.ArticleLikeStatusChanged(ctx, tx, article) })
	})
}

func (s *entityStore) UpdateReadProgress(ctx context.Context, id int64, progress float64) (models.Article, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Article{}, err
	}
	if err := models.ValidateReadProgress(progress); err != nil {
		return models.Article{}, err
	}
	log := logger.FromContext(ctx)

	result, err := s.querier().ExecContext(ctx, setArticleReadProgress,
		progress,
		time.Now().UTC(),
		s.tokens.Generate(),
		id,
	)
	if err != nil {
		log.Err(err).
			Str("func", "entityStore.UpdateReadProgress").
			Int64("article_id", id).
			Msg("failed to update read progress")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if err = expectAffected(result, ErrArticleNotFound); err != nil {
		return models.Article{}, err
	}

	return getArticleByID(ctx, s.querier(), id)
}

func (s *entityStore) RequestArticleAdd(ctx context.Context, url string, title *string) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyArticleURL
	}

	return s.db.inTx(ctx, s.tx, "entityStore.RequestArticleAdd", func(tx *sql.Tx) error {
		return s.notify(func(o EntityObserver) error { return o.ArticleAddRequested(ctx, tx, url, title) })
	})
}

func getArticleByID(ctx context.Context, q Querier, id int64) (models.Article, error) {
	article, err := scanArticle(q.QueryRowContext(ctx, getArticle, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Article{}, ErrArticleNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.getArticleByID").
			Int64("article_id", id).
			Msg("failed to scan article row")
		return models.Article{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return article, nil
}
