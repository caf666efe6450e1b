package remote

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
)

// ListBookmarks returns the bookmarks of a folder, newest first. The Liked
// listing spans every folder. A positive limit caps the result.
func (s *Service) ListBookmarks(ctx context.Context, folderID int64, limit int) ([]models.RemoteArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := folderID == models.LikedFolderServiceID
	if !liked && !s.folderExists(folderID) {
		return nil, fmt.Errorf("%w: %d", ErrFolderNotFound, folderID)
	}

	articles := make([]models.RemoteArticle, 0)
	for _, b := range s.bookmarks {
		if liked && b.article.Liked || !liked && b.folderID == folderID {
			articles = append(articles, b.article)
		}
	}
	slices.SortFunc(articles, func(a, b models.RemoteArticle) int {
		return cmp.Compare(b.ID, a.ID)
	})

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	return articles, nil
}

// AddBookmark saves url into Unread. Saving a url that is already
// bookmarked returns the existing bookmark unchanged.
func (s *Service) AddBookmark(ctx context.Context, url string, title *string) (models.RemoteArticle, error) {
	log := logger.FromContext(ctx)

	url = strings.TrimSpace(url)
	if url == "" {
		return models.RemoteArticle{}, ErrEmptyURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookmarks {
		if b.article.URL == url {
			return b.article, nil
		}
	}

	article := models.RemoteArticle{
		ID:                    s.nextBookmarkID,
		URL:                   url,
		Title:                 url,
		ReadProgressTimestamp: s.now().UTC(),
		Hash:                  s.hashes.Generate(),
	}
	if title != nil && strings.TrimSpace(*title) != "" {
		article.Title = strings.TrimSpace(*title)
	}
	s.nextBookmarkID++
	s.bookmarks[article.ID] = &bookmark{article: article, folderID: models.UnreadFolderServiceID}

	log.Debug().Str("func", "remote.AddBookmark").Int64("bookmark_id", article.ID).Msg("bookmark created")
	return article, nil
}

func (s *Service) DeleteBookmark(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[id]; !ok {
		return fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}
	delete(s.bookmarks, id)

	return nil
}

func (s *Service) MoveBookmark(ctx context.Context, id int64, folderID int64) (models.RemoteArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return models.RemoteArticle{}, fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}
	if !s.folderExists(folderID) {
		return models.RemoteArticle{}, fmt.Errorf("%w: %d", ErrFolderNotFound, folderID)
	}
	b.folderID = folderID

	return b.article, nil
}

// SetLiked stars or unstars a bookmark. The hash changes only when the
// flag actually flips.
func (s *Service) SetLiked(ctx context.Context, id int64, liked bool) (models.RemoteArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return models.RemoteArticle{}, fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}
	if b.article.Liked != liked {
		b.article.Liked = liked
		b.article.Hash = s.hashes.Generate()
	}

	return b.article, nil
}

func (s *Service) UpdateProgress(ctx context.Context, id int64, progress float64, timestamp time.Time) (models.RemoteArticle, error) {
	if err := models.ValidateReadProgress(progress); err != nil {
		return models.RemoteArticle{}, fmt.Errorf("%w: %w", ErrInvalidProgress, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return models.RemoteArticle{}, fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}
	if timestamp.IsZero() {
		timestamp = s.now()
	}
	b.article.ReadProgress = progress
	b.article.ReadProgressTimestamp = timestamp.UTC()
	b.article.Hash = s.hashes.Generate()

	return b.article, nil
}

// BookmarkUpdate carries optional changes to bookmark text.
type BookmarkUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *Service) UpdateBookmark(ctx context.Context, id int64, update BookmarkUpdate) (models.RemoteArticle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return models.RemoteArticle{}, fmt.Errorf("%w: %d", ErrBookmarkNotFound, id)
	}

	changed := false
	if update.Title != nil && *update.Title != b.article.Title {
		b.article.Title = *update.Title
		changed = true
	}
	if update.Description != nil && *update.Description != b.article.Description {
		b.article.Description = *update.Description
		changed = true
	}
	if changed {
		b.article.Hash = s.hashes.Generate()
	}

	return b.article, nil
}
