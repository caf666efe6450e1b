package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed operation could succeed if
// attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors and constraint
	// violations.
	NonRetryable ErrorClassification = iota

	// Retryable covers a busy or locked database.
	Retryable
)

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
	UniqueViolationColumn(err error) string
	IsForeignKeyViolation(err error) bool
}

// SQLiteErrorClassifier implements [ErrorClassificator] over the result
// codes of mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	sqliteErr, ok := asSQLiteError(err)
	if !ok {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation reports a PRIMARY KEY or UNIQUE constraint failure.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	sqliteErr, ok := asSQLiteError(err)
	if !ok || sqliteErr.Code != sqlite3.ErrConstraint {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// UniqueViolationColumn returns the "table.column" list named by a UNIQUE
// constraint failure, or "" for any other error.
func (c *SQLiteErrorClassifier) UniqueViolationColumn(err error) string {
	if !c.IsUniqueViolation(err) {
		return ""
	}

	_, columns, found := strings.Cut(err.Error(), "constraint failed: ")
	if !found {
		return ""
	}
	return columns
}

func (c *SQLiteErrorClassifier) IsForeignKeyViolation(err error) bool {
	sqliteErr, ok := asSQLiteError(err)
	return ok && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}

func asSQLiteError(err error) (sqlite3.Error, bool) {
	if err == nil {
		return sqlite3.Error{}, false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr, true
	}

	return sqlite3.Error{}, false
}
