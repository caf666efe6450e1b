package service

import "errors"

var (
	// ErrSyncCancelled wraps the context error of a cancelled sync. It is not
	// a failure: both stores are individually consistent when it is returned.
	ErrSyncCancelled = errors.New("sync cancelled")

	ErrRemoteFolderNotFound = errors.New("remote folder with this title was not found")
	ErrFolderNotSynced      = errors.New("folder has no service id")
)
