package models

// SyncResult counts what a sync pass did. Counters only cover completed
// units of work.
type SyncResult struct {
	FoldersAdded          int `json:"folders_added"`
	FoldersDeleted        int `json:"folders_deleted"`
	FoldersPulled         int `json:"folders_pulled"`
	ArticlesAdded         int `json:"articles_added"`
	ArticlesDeleted       int `json:"articles_deleted"`
	ArticlesMoved         int `json:"articles_moved"`
	ArticleStatesChanged  int `json:"article_states_changed"`
	ArticlesPulled        int `json:"articles_pulled"`
	ArticlesUnlinked      int `json:"articles_unlinked"`
	ProgressPushed        int `json:"progress_pushed"`
	OrphanedArticlesFreed int `json:"orphaned_articles_freed"`
}
