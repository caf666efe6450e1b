package ledger

import (
	"errors"
	"fmt"
)

// ErrFolderHasPendingArticleMove is matched by every
// [FolderHasPendingArticleMoveError].
var ErrFolderHasPendingArticleMove = errors.New("folder is the destination of pending article moves")

// FolderHasPendingArticleMoveError stops a folder deletion while pending
// moves still target it. Clear the moves first.
type FolderHasPendingArticleMoveError struct {
	FolderLocalID int64
	Moves         int
}

func (e *FolderHasPendingArticleMoveError) Error() string {
	return fmt.Sprintf("folder %d is the destination of %d pending article move(s)", e.FolderLocalID, e.Moves)
}

func (e *FolderHasPendingArticleMoveError) Is(target error) bool {
	return target == ErrFolderHasPendingArticleMove
}
