package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/utils"
)

// ClientStorages groups the client-side stores that share the local database.
type ClientStorages struct {
	DB *DB

	// Entities is the tracked entity store. Subscribe the change ledger to it
	// before handing it to anything that mutates.
	Entities EntityStore

	Pending PendingChangeStore

	// Content holds downloaded article bodies.
	Content ArticleContentStorage
}

// NewClientStorages opens the SQLite database at cfg.DSN, creating the file
// if needed, runs migrations and returns Ready stores. Article bodies go to
// cfg.ContentDir.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, tokens utils.TokenGenerator, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	storages, err := newClientStorages(ctx, db, tokens, logger)
	if err != nil {
		return nil, err
	}
	storages.Content = NewArticleContentFileStorage(cfg.ContentDir)

	return storages, nil
}

func newClientStorages(ctx context.Context, db *DB, tokens utils.TokenGenerator, logger *logger.Logger) (*ClientStorages, error) {
	if err := db.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store initialization failed: %w", err)
	}

	return &ClientStorages{
		DB:       db,
		Entities: NewEntityStore(db, tokens, logger),
		Pending:  NewPendingChangeStore(db, logger),
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
