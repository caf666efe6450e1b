package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

// observerList is shared by an entity store and every view derived from it.
type observerList struct {
	mu        sync.RWMutex
	observers []EntityObserver
}

func (l *observerList) add(o EntityObserver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, o)
}

func (l *observerList) snapshot() []EntityObserver {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]EntityObserver(nil), l.observers...)
}

type entityStore struct {
	db        *DB
	tx        *sql.Tx
	tracked   bool
	observers *observerList
	tokens    utils.TokenGenerator
	logger    *logger.Logger
}

// NewEntityStore returns the tracked root store over db.
func NewEntityStore(db *DB, tokens utils.TokenGenerator, logger *logger.Logger) EntityStore {
	return &entityStore{
		db:        db,
		tracked:   true,
		observers: &observerList{},
		tokens:    tokens,
		logger:    logger,
	}
}

func (s *entityStore) Subscribe(observer EntityObserver) {
	s.observers.add(observer)
}

func (s *entityStore) Untracked() EntityStore {
	view := *s
	view.tracked = false
	return &view
}

func (s *entityStore) WithTx(tx *sql.Tx) EntityStore {
	view := *s
	view.tx = tx
	return &view
}

func (s *entityStore) querier() Querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db.DB
}

// notify calls every observer in order and stops at the first error.
func (s *entityStore) notify(call func(o EntityObserver) error) error {
	if !s.tracked {
		return nil
	}

	for _, o := range s.observers.snapshot() {
		if err := call(o); err != nil {
			return err
		}
	}

	return nil
}

func (s *entityStore) AddFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Folder{}, err
	}
	log := logger.FromContext(ctx)

	var added models.Folder
	err := s.db.inTx(ctx, s.tx, "entityStore.AddFolder", func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, insertFolder,
			nullableInt64(folder.ServiceID),
			folder.Title,
			folder.Position,
			folder.ShouldSync,
		)
		inserted, err := scanFolder(row)
		if err != nil {
			if conflict := s.folderConflict(err, folder); conflict != nil {
				return conflict
			}
			log.Err(err).
				Str("func", "entityStore.AddFolder").
				Str("title", folder.Title).
				Msg("failed to insert folder")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = s.notify(func(o EntityObserver) error { return o.FolderAdded(ctx, tx, inserted) }); err != nil {
			return err
		}

		// observers may have rewritten the row
		added, err = getFolder(ctx, tx, getFolderByLocalID, inserted.LocalID)
		return err
	})
	if err != nil {
		return models.Folder{}, err
	}

	log.Debug().
		Str("func", "entityStore.AddFolder").
		Int64("local_id", added.LocalID).
		Str("title", added.Title).
		Msg("folder added")

	return added, nil
}

func (s *entityStore) GetFolder(ctx context.Context, localID int64) (models.Folder, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Folder{}, err
	}
	return getFolder(ctx, s.querier(), getFolderByLocalID, localID)
}

func (s *entityStore) GetFolderByServiceID(ctx context.Context, serviceID int64) (models.Folder, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Folder{}, err
	}
	return getFolder(ctx, s.querier(), getFolderByServiceID, serviceID)
}

func (s *entityStore) GetFolderByTitle(ctx context.Context, title string) (models.Folder, error) {
	if err := s.db.checkReady(); err != nil {
		return models.Folder{}, err
	}
	return getFolder(ctx, s.querier(), getFolderByTitle, title)
}

func (s *entityStore) ListFolders(ctx context.Context) ([]models.Folder, error) {
	if err := s.db.checkReady(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	rows, err := s.querier().QueryContext(ctx, listFolders)
	if err != nil {
		log.Err(err).Str("func", "entityStore.ListFolders").Msg("failed to query folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		folder, scanErr := scanFolder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "entityStore.ListFolders").Msg("failed to scan folder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		folders = append(folders, folder)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (s *entityStore) UpdateFolder(ctx context.Context, folder models.Folder) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	log := logger.FromContext(ctx)

	result, err := s.querier().ExecContext(ctx, updateFolder,
		nullableInt64(folder.ServiceID),
		folder.Title,
		folder.Position,
		folder.ShouldSync,
		folder.LocalID,
	)
	if err != nil {
		if conflict := s.folderConflict(err, folder); conflict != nil {
			return conflict
		}
		log.Err(err).
			Str("func", "entityStore.UpdateFolder").
			Int64("local_id", folder.LocalID).
			Msg("failed to update folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrFolderNotFound)
}

func (s *entityStore) DeleteFolder(ctx context.Context, localID int64) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}
	if models.IsWellKnownFolder(localID) {
		return ErrWellKnownFolder
	}
	log := logger.FromContext(ctx)

	err := s.db.inTx(ctx, s.tx, "entityStore.DeleteFolder", func(tx *sql.Tx) error {
		folder, err := getFolder(ctx, tx, getFolderByLocalID, localID)
		if err != nil {
			return err
		}

		if err = s.notify(func(o EntityObserver) error { return o.FolderWillBeDeleted(ctx, tx, folder) }); err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, deleteFolder, localID); err != nil {
			log.Err(err).
				Str("func", "entityStore.DeleteFolder").
				Int64("local_id", localID).
				Msg("failed to delete folder")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return s.notify(func(o EntityObserver) error { return o.FolderDeleted(ctx, tx, folder) })
	})
	if err != nil {
		return err
	}

	log.Debug().
		Str("func", "entityStore.DeleteFolder").
		Int64("local_id", localID).
		Msg("folder deleted")

	return nil
}

// folderConflict maps a unique violation on the folders table to the
// constraint that failed. It returns nil for any other error.
func (s *entityStore) folderConflict(err error, folder models.Folder) error {
	classifier := s.db.errorClassificator
	if !classifier.IsUniqueViolation(err) {
		return nil
	}

	if classifier.UniqueViolationColumn(err) == "folders.service_id" && folder.ServiceID != nil {
		return fmt.Errorf("%w: %d", ErrFolderServiceIDExists, *folder.ServiceID)
	}
	return fmt.Errorf("%w: %q", ErrFolderTitleExists, folder.Title)
}

func getFolder(ctx context.Context, q Querier, query string, arg any) (models.Folder, error) {
	folder, err := scanFolder(q.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.getFolder").
			Any("key", arg).
			Msg("failed to scan folder row")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

func exists(ctx context.Context, q Querier, query string, arg any) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return found, nil
}

func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
