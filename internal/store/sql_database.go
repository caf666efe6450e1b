package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/migrations"
	"github.com/MKhiriev/go-read-later/models"
)

// State is the lifecycle position of a [DB].
type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateDisposed:
		return "disposed"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

// DB is the exclusive local database handle shared by the entity store and
// the pending-change store. It moves Uninitialized → Ready → Disposed and
// never goes back.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	state              atomic.Int32
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func (db *DB) State() State {
	return State(db.state.Load())
}

// Initialize applies migrations, checks that Unread and Archive exist and
// marks the database Ready. Calling it on a Ready database is a no-op.
func (db *DB) Initialize(ctx context.Context) error {
	switch db.State() {
	case StateReady:
		return nil
	case StateDisposed:
		return ErrStoreNotReady
	}

	if err := db.Migrate(); err != nil {
		db.logger.Err(err).Str("func", "DB.Initialize").Msg("migration failed")
		return fmt.Errorf("migration failed: %w", err)
	}

	var seeded int
	err := db.QueryRowContext(ctx, countWellKnownFolders,
		models.UnreadFolderLocalID, models.ArchiveFolderLocalID).Scan(&seeded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if seeded != 2 {
		return ErrSeedingFolders
	}

	if !db.state.CompareAndSwap(int32(StateUninitialized), int32(StateReady)) {
		return ErrStoreNotReady
	}
	db.logger.Debug().Str("func", "DB.Initialize").Msg("local store is ready")

	return nil
}

// Close disposes the database. Further operations return ErrStoreNotReady.
func (db *DB) Close() error {
	if State(db.state.Swap(int32(StateDisposed))) == StateDisposed {
		return nil
	}

	return db.DB.Close()
}

func (db *DB) checkReady() error {
	if db.State() != StateReady {
		return ErrStoreNotReady
	}
	return nil
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn in a new transaction. Stores bound to tx with WithTx commit
// or roll back together.
func (db *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := db.checkReady(); err != nil {
		return err
	}
	return db.inTx(ctx, nil, "DB.InTx", fn)
}

// inTx runs fn inside tx when one is given, otherwise inside a fresh
// transaction that is committed only if fn succeeds.
func (db *DB) inTx(ctx context.Context, tx *sql.Tx, funcName string, fn func(tx *sql.Tx) error) error {
	if tx != nil {
		return fn(tx)
	}

	log := logger.FromContext(ctx)

	newTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).
			Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer newTx.Rollback()

	if err = fn(newTx); err != nil {
		return err
	}

	if err = newTx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).
			Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
