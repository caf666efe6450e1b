package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-read-later/models"
)

// EntityObserver receives notifications raised inside the transaction of a
// local mutation, before it commits. Every callback gets the in-flight
// transaction; returning an error rolls the whole transaction back,
// including whatever earlier observers wrote.
type EntityObserver interface {
	FolderAdded(ctx context.Context, tx *sql.Tx, folder models.Folder) error
	FolderWillBeDeleted(ctx context.Context, tx *sql.Tx, folder models.Folder) error
	FolderDeleted(ctx context.Context, tx *sql.Tx, folder models.Folder) error
	ArticleDeleted(ctx context.Context, tx *sql.Tx, article models.Article) error
	ArticleLikeStatusChanged(ctx context.Context, tx *sql.Tx, article models.Article) error
	ArticleMovedToFolder(ctx context.Context, tx *sql.Tx, article models.Article, destinationFolderLocalID int64) error
	ArticleAddRequested(ctx context.Context, tx *sql.Tx, url string, title *string) error
}

type FolderRepository interface {
	// AddFolder inserts folder and returns it with its assigned LocalID, as
	// left by the observers.
	AddFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	GetFolder(ctx context.Context, localID int64) (models.Folder, error)
	GetFolderByServiceID(ctx context.Context, serviceID int64) (models.Folder, error)
	GetFolderByTitle(ctx context.Context, title string) (models.Folder, error)
	ListFolders(ctx context.Context) ([]models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) error
	DeleteFolder(ctx context.Context, localID int64) error
}

type ArticleRepository interface {
	// AddArticle inserts article or replaces the stored copy with the same ID.
	AddArticle(ctx context.Context, article models.Article) error
	GetArticle(ctx context.Context, id int64) (models.Article, error)
	ListArticles(ctx context.Context, folderLocalID int64) ([]models.Article, error)
	ListLikedArticles(ctx context.Context) ([]models.Article, error)
	ListOrphanedArticles(ctx context.Context) ([]models.Article, error)
	ListArticlesWithoutLocalState(ctx context.Context) ([]models.Article, error)
	UpdateArticle(ctx context.Context, article models.Article) error
	DeleteArticle(ctx context.Context, id int64) error
	// MoveArticleToFolder sets the folder membership. A nil folderLocalID
	// unlinks the article; unlinking raises no notification.
	MoveArticleToFolder(ctx context.Context, id int64, folderLocalID *int64) error
	LikeArticle(ctx context.Context, id int64) error
	UnlikeArticle(ctx context.Context, id int64) error
	// UpdateReadProgress stores progress with the current time and a fresh
	// opaque hash, so the next sync sees the article as changed.
	UpdateReadProgress(ctx context.Context, id int64, progress float64) (models.Article, error)
	// RequestArticleAdd records the wish to save url remotely. No local
	// article exists until the service hydrates it.
	RequestArticleAdd(ctx context.Context, url string, title *string) error
}

type LocalOnlyStateRepository interface {
	GetLocalOnlyState(ctx context.Context, articleID int64) (models.LocalOnlyState, error)
	SetLocalOnlyState(ctx context.Context, state models.LocalOnlyState) error
	DeleteLocalOnlyState(ctx context.Context, articleID int64) error
}

// EntityStore is the local cache of folders and articles.
type EntityStore interface {
	FolderRepository
	ArticleRepository
	LocalOnlyStateRepository

	// Subscribe registers observer. Observers are called in registration order.
	Subscribe(observer EntityObserver)
	// Untracked returns a view whose mutations notify nobody. Writes that
	// mirror remote state go through it so they never become local intents.
	Untracked() EntityStore
	// WithTx returns a view bound to an in-flight transaction.
	WithTx(tx *sql.Tx) EntityStore
}

// PendingChangeStore is the journal of local intents not yet confirmed by
// the remote service. Every kind has its own table keyed by the entity the
// intent concerns; Create fails with DuplicatePendingChangeError on a key
// collision and Delete of an absent key succeeds.
type PendingChangeStore interface {
	CreatePendingFolderAdd(ctx context.Context, change models.PendingFolderAdd) error
	GetPendingFolderAdd(ctx context.Context, folderLocalID int64) (models.PendingFolderAdd, error)
	ListPendingFolderAdds(ctx context.Context) ([]models.PendingFolderAdd, error)
	DeletePendingFolderAdd(ctx context.Context, folderLocalID int64) error

	CreatePendingFolderDelete(ctx context.Context, change models.PendingFolderDelete) error
	GetPendingFolderDelete(ctx context.Context, serviceID int64) (models.PendingFolderDelete, error)
	GetPendingFolderDeleteByTitle(ctx context.Context, title string) (models.PendingFolderDelete, error)
	ListPendingFolderDeletes(ctx context.Context) ([]models.PendingFolderDelete, error)
	DeletePendingFolderDelete(ctx context.Context, serviceID int64) error

	CreatePendingArticleAdd(ctx context.Context, change models.PendingArticleAdd) error
	GetPendingArticleAdd(ctx context.Context, url string) (models.PendingArticleAdd, error)
	ListPendingArticleAdds(ctx context.Context) ([]models.PendingArticleAdd, error)
	DeletePendingArticleAdd(ctx context.Context, url string) error

	CreatePendingArticleDelete(ctx context.Context, change models.PendingArticleDelete) error
	GetPendingArticleDelete(ctx context.Context, articleID int64) (models.PendingArticleDelete, error)
	ListPendingArticleDeletes(ctx context.Context) ([]models.PendingArticleDelete, error)
	DeletePendingArticleDelete(ctx context.Context, articleID int64) error

	// CreatePendingArticleMove also fails with ErrArticleNotFound or
	// ErrFolderNotFound when either end of the move does not exist locally.
	CreatePendingArticleMove(ctx context.Context, change models.PendingArticleMove) error
	GetPendingArticleMove(ctx context.Context, articleID int64) (models.PendingArticleMove, error)
	ListPendingArticleMoves(ctx context.Context) ([]models.PendingArticleMove, error)
	ListPendingArticleMovesToFolder(ctx context.Context, folderLocalID int64) ([]models.PendingArticleMove, error)
	DeletePendingArticleMove(ctx context.Context, articleID int64) error

	// CreatePendingArticleStateChange also fails with ErrArticleNotFound when
	// the article does not exist locally.
	CreatePendingArticleStateChange(ctx context.Context, change models.PendingArticleStateChange) error
	GetPendingArticleStateChange(ctx context.Context, articleID int64) (models.PendingArticleStateChange, error)
	ListPendingArticleStateChanges(ctx context.Context) ([]models.PendingArticleStateChange, error)
	DeletePendingArticleStateChange(ctx context.Context, articleID int64) error

	// Snapshot reads every table at once.
	Snapshot(ctx context.Context) (models.PendingChanges, error)
	IsEmpty(ctx context.Context) (bool, error)

	WithTx(tx *sql.Tx) PendingChangeStore
}
