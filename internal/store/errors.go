package store

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-later/models"
)

// Sentinel errors returned by the entity and pending-change stores. Callers
// match them with [errors.Is].
var (
	ErrFolderNotFound         = errors.New("folder was not found")
	ErrArticleNotFound        = errors.New("article was not found")
	ErrLocalOnlyStateNotFound = errors.New("local-only state was not found")

	// ErrPendingChangeNotFound is returned by the pending-change getters when
	// no row exists for the requested key.
	ErrPendingChangeNotFound = errors.New("pending change was not found")

	// ErrDuplicatePendingChange is matched by every [DuplicatePendingChangeError].
	ErrDuplicatePendingChange = errors.New("pending change already exists")

	// ErrFolderTitleExists is returned when a folder insert or rename collides
	// with an existing title.
	ErrFolderTitleExists = errors.New("folder with this title already exists")

	// ErrFolderServiceIDExists is returned when a folder would be bound to a
	// service id another local folder already carries.
	ErrFolderServiceIDExists = errors.New("folder with this service id already exists")

	// ErrWellKnownFolder is returned when Unread or Archive would be deleted.
	ErrWellKnownFolder = errors.New("well-known folders cannot be deleted")

	// ErrStoreNotReady is returned by every operation issued before
	// Initialize or after Close.
	ErrStoreNotReady = errors.New("store is not ready")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrSeedingFolders       = errors.New("well-known folders are missing")
)

// DuplicatePendingChangeError reports a key collision in one of the
// pending-change tables.
type DuplicatePendingChangeError struct {
	Kind models.PendingChangeKind
	Key  string
}

func (e *DuplicatePendingChangeError) Error() string {
	return fmt.Sprintf("duplicate pending %s for key %s", e.Kind, e.Key)
}

func (e *DuplicatePendingChangeError) Is(target error) bool {
	return target == ErrDuplicatePendingChange
}

func newDuplicatePendingChangeError(kind models.PendingChangeKind, key any) error {
	return &DuplicatePendingChangeError{Kind: kind, Key: fmt.Sprint(key)}
}
