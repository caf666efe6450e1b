package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
)

type pendingChangeStore struct {
	db     *DB
	tx     *sql.Tx
	logger *logger.Logger
}

func NewPendingChangeStore(db *DB, logger *logger.Logger) PendingChangeStore {
	return &pendingChangeStore{
		db:     db,
		logger: logger,
	}
}

func (p *pendingChangeStore) WithTx(tx *sql.Tx) PendingChangeStore {
	view := *p
	view.tx = tx
	return &view
}

func (p *pendingChangeStore) querier() Querier {
	if p.tx != nil {
		return p.tx
	}
	return p.db.DB
}

// insert maps a key collision onto DuplicatePendingChangeError.
func (p *pendingChangeStore) insert(ctx context.Context, kind models.PendingChangeKind, key any, query string, args ...any) error {
	if err := p.db.checkReady(); err != nil {
		return err
	}

	if _, err := p.querier().ExecContext(ctx, query, args...); err != nil {
		if p.db.errorClassificator.IsUniqueViolation(err) {
			return newDuplicatePendingChangeError(kind, key)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingChangeStore.insert").
			Str("kind", string(kind)).
			Any("key", key).
			Msg("failed to insert pending change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "pendingChangeStore.insert").
		Str("kind", string(kind)).
		Any("key", key).
		Msg("pending change recorded")

	return nil
}

// remove succeeds whether or not a row was there.
func (p *pendingChangeStore) remove(ctx context.Context, kind models.PendingChangeKind, key any, query string) error {
	if err := p.db.checkReady(); err != nil {
		return err
	}

	if _, err := p.querier().ExecContext(ctx, query, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingChangeStore.remove").
			Str("kind", string(kind)).
			Any("key", key).
			Msg("failed to delete pending change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func getPending[T any](ctx context.Context, p *pendingChangeStore, query string, key any, scan func(rowScanner) (T, error)) (T, error) {
	var zero T
	if err := p.db.checkReady(); err != nil {
		return zero, err
	}

	item, err := scan(p.querier().QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrPendingChangeNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func listPending[T any](ctx context.Context, p *pendingChangeStore, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	if err := p.db.checkReady(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	rows, err := p.querier().QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "store.listPending").Msg("failed to query pending changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "store.listPending").Msg("failed to scan pending change row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// ── folder adds ──────────────────────────────────────────────────────────────

func scanPendingFolderAdd(row rowScanner) (models.PendingFolderAdd, error) {
	var change models.PendingFolderAdd
	err := row.Scan(&change.FolderLocalID, &change.Title)
	return change, err
}

func (p *pendingChangeStore) CreatePendingFolderAdd(ctx context.Context, change models.PendingFolderAdd) error {
	return p.insert(ctx, models.PendingFolderAddKind, change.FolderLocalID, insertPendingFolderAdd,
		change.FolderLocalID, change.Title)
}

func (p *pendingChangeStore) GetPendingFolderAdd(ctx context.Context, folderLocalID int64) (models.PendingFolderAdd, error) {
	return getPending(ctx, p, getPendingFolderAdd, folderLocalID, scanPendingFolderAdd)
}

func (p *pendingChangeStore) ListPendingFolderAdds(ctx context.Context) ([]models.PendingFolderAdd, error) {
	return listPending(ctx, p, scanPendingFolderAdd, listPendingFolderAdds)
}

func (p *pendingChangeStore) DeletePendingFolderAdd(ctx context.Context, folderLocalID int64) error {
	return p.remove(ctx, models.PendingFolderAddKind, folderLocalID, deletePendingFolderAdd)
}

// ── folder deletes ───────────────────────────────────────────────────────────

func scanPendingFolderDelete(row rowScanner) (models.PendingFolderDelete, error) {
	var change models.PendingFolderDelete
	err := row.Scan(&change.ServiceID, &change.Title, &change.Position, &change.ShouldSync)
	return change, err
}

func (p *pendingChangeStore) CreatePendingFolderDelete(ctx context.Context, change models.PendingFolderDelete) error {
	return p.insert(ctx, models.PendingFolderDeleteKind, change.ServiceID, insertPendingFolderDelete,
		change.ServiceID, change.Title, change.Position, change.ShouldSync)
}

func (p *pendingChangeStore) GetPendingFolderDelete(ctx context.Context, serviceID int64) (models.PendingFolderDelete, error) {
	return getPending(ctx, p, getPendingFolderDelete, serviceID, scanPendingFolderDelete)
}

// GetPendingFolderDeleteByTitle returns the pending delete captured with
// title. Should several exist, the highest service id wins.
func (p *pendingChangeStore) GetPendingFolderDeleteByTitle(ctx context.Context, title string) (models.PendingFolderDelete, error) {
	return getPending(ctx, p, getPendingFolderDeleteByTitle, title, scanPendingFolderDelete)
}

func (p *pendingChangeStore) ListPendingFolderDeletes(ctx context.Context) ([]models.PendingFolderDelete, error) {
	return listPending(ctx, p, scanPendingFolderDelete, listPendingFolderDeletes)
}

func (p *pendingChangeStore) DeletePendingFolderDelete(ctx context.Context, serviceID int64) error {
	return p.remove(ctx, models.PendingFolderDeleteKind, serviceID, deletePendingFolderDelete)
}

// ── article adds ─────────────────────────────────────────────────────────────

func scanPendingArticleAdd(row rowScanner) (models.PendingArticleAdd, error) {
	var (
		change models.PendingArticleAdd
		title  sql.NullString
	)
	if err := row.Scan(&change.URL, &title); err != nil {
		return models.PendingArticleAdd{}, err
	}
	change.Title = stringPtrFromNull(title)
	return change, nil
}

func (p *pendingChangeStore) CreatePendingArticleAdd(ctx context.Context, change models.PendingArticleAdd) error {
	return p.insert(ctx, models.PendingArticleAddKind, change.URL, insertPendingArticleAdd,
		change.URL, nullableString(change.Title))
}

func (p *pendingChangeStore) GetPendingArticleAdd(ctx context.Context, url string) (models.PendingArticleAdd, error) {
	return getPending(ctx, p, getPendingArticleAdd, url, scanPendingArticleAdd)
}

func (p *pendingChangeStore) ListPendingArticleAdds(ctx context.Context) ([]models.PendingArticleAdd, error) {
	return listPending(ctx, p, scanPendingArticleAdd, listPendingArticleAdds)
}

func (p *pendingChangeStore) DeletePendingArticleAdd(ctx context.Context, url string) error {
	return p.remove(ctx, models.PendingArticleAddKind, url, deletePendingArticleAdd)
}

// ── article deletes ──────────────────────────────────────────────────────────

func scanPendingArticleDelete(row rowScanner) (models.PendingArticleDelete, error) {
	var change models.PendingArticleDelete
	err := row.Scan(&change.ArticleID)
	return change, err
}

func (p *pendingChangeStore) CreatePendingArticleDelete(ctx context.Context, change models.PendingArticleDelete) error {
	return p.insert(ctx, models.PendingArticleDeleteKind, change.ArticleID, insertPendingArticleDelete,
		change.ArticleID)
}

func (p *pendingChangeStore) GetPendingArticleDelete(ctx context.Context, articleID int64) (models.PendingArticleDelete, error) {
	return getPending(ctx, p, getPendingArticleDelete, articleID, scanPendingArticleDelete)
}

func (p *pendingChangeStore) ListPendingArticleDeletes(ctx context.Context) ([]models.PendingArticleDelete, error) {
	return listPending(ctx, p, scanPendingArticleDelete, listPendingArticleDeletes)
}

func (p *pendingChangeStore) DeletePendingArticleDelete(ctx context.Context, articleID int64) error {
	return p.remove(ctx, models.PendingArticleDeleteKind, articleID, deletePendingArticleDelete)
}

// ── article moves ────────────────────────────────────────────────────────────

func scanPendingArticleMove(row rowScanner) (models.PendingArticleMove, error) {
	var change models.PendingArticleMove
	err := row.Scan(&change.ArticleID, &change.DestinationFolderLocalID)
	return change, err
}

func (p *pendingChangeStore) CreatePendingArticleMove(ctx context.Context, change models.PendingArticleMove) error {
	if err := p.db.checkReady(); err != nil {
		return err
	}
	if err := p.requireArticle(ctx, change.ArticleID); err != nil {
		return err
	}

	found, err := exists(ctx, p.querier(), folderExists, change.DestinationFolderLocalID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFolderNotFound
	}

	return p.insert(ctx, models.PendingArticleMoveKind, change.ArticleID, insertPendingArticleMove,
		change.ArticleID, change.DestinationFolderLocalID)
}

func (p *pendingChangeStore) GetPendingArticleMove(ctx context.Context, articleID int64) (models.PendingArticleMove, error) {
	return getPending(ctx, p, getPendingArticleMove, articleID, scanPendingArticleMove)
}

func (p *pendingChangeStore) ListPendingArticleMoves(ctx context.Context) ([]models.PendingArticleMove, error) {
	return p.listPendingArticleMoves(ctx, nil)
}

func (p *pendingChangeStore) ListPendingArticleMovesToFolder(ctx context.Context, folderLocalID int64) ([]models.PendingArticleMove, error) {
	return p.listPendingArticleMoves(ctx, &folderLocalID)
}

func (p *pendingChangeStore) listPendingArticleMoves(ctx context.Context, destination *int64) ([]models.PendingArticleMove, error) {
	query, args, err := buildListPendingArticleMovesQuery(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return listPending(ctx, p, scanPendingArticleMove, query, args...)
}

func (p *pendingChangeStore) DeletePendingArticleMove(ctx context.Context, articleID int64) error {
	return p.remove(ctx, models.PendingArticleMoveKind, articleID, deletePendingArticleMove)
}

// ── article state changes ────────────────────────────────────────────────────

func scanPendingArticleStateChange(row rowScanner) (models.PendingArticleStateChange, error) {
	var change models.PendingArticleStateChange
	err := row.Scan(&change.ArticleID, &change.Liked)
	return change, err
}

func (p *pendingChangeStore) CreatePendingArticleStateChange(ctx context.Context, change models.PendingArticleStateChange) error {
	if err := p.db.checkReady(); err != nil {
		return err
	}
	if err := p.requireArticle(ctx, change.ArticleID); err != nil {
		return err
	}

	return p.insert(ctx, models.PendingArticleStateChangeKind, change.ArticleID, insertPendingArticleStateChange,
		change.ArticleID, change.Liked)
}

func (p *pendingChangeStore) GetPendingArticleStateChange(ctx context.Context, articleID int64) (models.PendingArticleStateChange, error) {
	return getPending(ctx, p, getPendingArticleStateChange, articleID, scanPendingArticleStateChange)
}

func (p *pendingChangeStore) ListPendingArticleStateChanges(ctx context.Context) ([]models.PendingArticleStateChange, error) {
	return listPending(ctx, p, scanPendingArticleStateChange, listPendingArticleStateChanges)
}

func (p *pendingChangeStore) DeletePendingArticleStateChange(ctx context.Context, articleID int64) error {
	return p.remove(ctx, models.PendingArticleStateChangeKind, articleID, deletePendingArticleStateChange)
}

func (p *pendingChangeStore) requireArticle(ctx context.Context, articleID int64) error {
	found, err := exists(ctx, p.querier(), articleExists, articleID)
	if err != nil {
		return err
	}
	if !found {
		return ErrArticleNotFound
	}
	return nil
}

// ── aggregate views ──────────────────────────────────────────────────────────

func (p *pendingChangeStore) Snapshot(ctx context.Context) (models.PendingChanges, error) {
	var (
		snapshot models.PendingChanges
		err      error
	)

	if snapshot.FolderAdds, err = p.ListPendingFolderAdds(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if snapshot.FolderDeletes, err = p.ListPendingFolderDeletes(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if snapshot.ArticleAdds, err = p.ListPendingArticleAdds(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if snapshot.ArticleDeletes, err = p.ListPendingArticleDeletes(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if snapshot.ArticleMoves, err = p.ListPendingArticleMoves(ctx); err != nil {
		return models.PendingChanges{}, err
	}
	if snapshot.ArticleStateChanges, err = p.ListPendingArticleStateChanges(ctx); err != nil {
		return models.PendingChanges{}, err
	}

	return snapshot, nil
}

func (p *pendingChangeStore) IsEmpty(ctx context.Context) (bool, error) {
	snapshot, err := p.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return snapshot.Len() == 0, nil
}
