package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, logger.Nop())
	db.state.Store(int32(StateReady))

	return db, mock
}

func TestEntityStore_AddFolder_InsertErrorRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	entities := NewEntityStore(db, &sequenceTokens{}, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO folders").
		WithArgs(nil, "Broken", int64(0), false).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := entities.AddFolder(testContext(), models.Folder{Title: "Broken"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityStore_DeleteFolder_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	entities := NewEntityStore(db, &sequenceTokens{}, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM folders WHERE local_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"local_id", "service_id", "title", "position", "should_sync"}).
			AddRow(int64(7), nil, "Temp", int64(0), true))
	mock.ExpectExec("DELETE FROM folders").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	err := entities.DeleteFolder(testContext(), 7)
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEntityStore_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	entities := NewEntityStore(db, &sequenceTokens{}, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	assert.ErrorIs(t, entities.LikeArticle(testContext(), 1), ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "disposed", StateDisposed.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primary := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	foreign := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		class      ErrorClassification
	}{
		{name: "nil", err: nil, class: NonRetryable},
		{name: "plain error", err: errors.New("x"), class: NonRetryable},
		{name: "unique", err: unique, unique: true, class: NonRetryable},
		{name: "wrapped primary key", err: fmt.Errorf("insert: %w", primary), unique: true, class: NonRetryable},
		{name: "foreign key", err: foreign, foreignKey: true, class: NonRetryable},
		{name: "busy", err: busy, class: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, c.IsUniqueViolation(tt.err))
			assert.Equal(t, tt.foreignKey, c.IsForeignKeyViolation(tt.err))
			assert.Empty(t, c.UniqueViolationColumn(tt.err), "bare result codes carry no column")
			assert.Equal(t, tt.class, c.Classify(tt.err))
		})
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", withForeignKeys(":memory:"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on", withForeignKeys("file:a.db?cache=shared"))
	assert.Equal(t, "a.db?_fk=1", withForeignKeys("a.db?_fk=1"))
}
