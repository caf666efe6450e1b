package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

type sequenceTokens struct {
	n int
}

func (s *sequenceTokens) Generate() string {
	s.n++
	return fmt.Sprintf("local-token-%d", s.n)
}

func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()
	ctx := testContext()

	db, err := NewConnectSQLite(ctx, inMemoryDSN, logger.Nop())
	require.NoError(t, err)

	storages, err := newClientStorages(ctx, db, &sequenceTokens{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func seedArticle(t *testing.T, entities EntityStore, id int64, folderLocalID *int64, liked bool) models.Article {
	t.Helper()
	article := models.Article{
		ID:                    id,
		URL:                   fmt.Sprintf("https://example.com/%d", id),
		Title:                 fmt.Sprintf("Article %d", id),
		Description:           "description",
		ReadProgress:          0.25,
		ReadProgressTimestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Hash:                  fmt.Sprintf("remote-hash-%d", id),
		Liked:                 liked,
		FolderLocalID:         folderLocalID,
	}
	require.NoError(t, entities.Untracked().AddArticle(testContext(), article))
	return article
}

func seedFolder(t *testing.T, entities EntityStore, title string, serviceID *int64) models.Folder {
	t.Helper()
	folder, err := entities.Untracked().AddFolder(testContext(), models.Folder{
		Title:      title,
		ServiceID:  serviceID,
		ShouldSync: true,
	})
	require.NoError(t, err)
	return folder
}

type observedEvent struct {
	name    string
	folder  models.Folder
	article models.Article
	dest    int64
	url     string
	hadTx   bool
}

// recordingObserver remembers every callback and optionally fails one.
type recordingObserver struct {
	events []observedEvent
	failOn string
	err    error
	onAdd  func(ctx context.Context, tx *sql.Tx, folder models.Folder) error
}

func (r *recordingObserver) record(e observedEvent) error {
	r.events = append(r.events, e)
	if r.failOn == e.name {
		return r.err
	}
	return nil
}

func (r *recordingObserver) names() []string {
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.name)
	}
	return names
}

func (r *recordingObserver) FolderAdded(ctx context.Context, tx *sql.Tx, folder models.Folder) error {
	if err := r.record(observedEvent{name: "FolderAdded", folder: folder, hadTx: tx != nil}); err != nil {
		return err
	}
	if r.onAdd != nil {
		return r.onAdd(ctx, tx, folder)
	}
	return nil
}

func (r *recordingObserver) FolderWillBeDeleted(_ context.Context, tx *sql.Tx, folder models.Folder) error {
	return r.record(observedEvent{name: "FolderWillBeDeleted", folder: folder, hadTx: tx != nil})
}

func (r *recordingObserver) FolderDeleted(_ context.Context, tx *sql.Tx, folder models.Folder) error {
	return r.record(observedEvent{name: "FolderDeleted", folder: folder, hadTx: tx != nil})
}

func (r *recordingObserver) ArticleDeleted(_ context.Context, tx *sql.Tx, article models.Article) error {
	return r.record(observedEvent{name: "ArticleDeleted", article: article, hadTx: tx != nil})
}

func (r *recordingObserver) ArticleLikeStatusChanged(_ context.Context, tx *sql.Tx, article models.Article) error {
	return r.record(observedEvent{name: "ArticleLikeStatusChanged", article: article, hadTx: tx != nil})
}

func (r *recordingObserver) ArticleMovedToFolder(_ context.Context, tx *sql.Tx, article models.Article, dest int64) error {
	return r.record(observedEvent{name: "ArticleMovedToFolder", article: article, dest: dest, hadTx: tx != nil})
}

func (r *recordingObserver) ArticleAddRequested(_ context.Context, tx *sql.Tx, url string, _ *string) error {
	return r.record(observedEvent{name: "ArticleAddRequested", url: url, hadTx: tx != nil})
}
