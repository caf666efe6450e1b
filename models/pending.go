// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PendingChangeKind names a pending-change table. It is used in errors and
// log fields.
type PendingChangeKind string

const (
	PendingFolderAddKind          PendingChangeKind = "folder_add"
	PendingFolderDeleteKind       PendingChangeKind = "folder_delete"
	PendingArticleAddKind         PendingChangeKind = "article_add"
	PendingArticleDeleteKind      PendingChangeKind = "article_delete"
	PendingArticleMoveKind        PendingChangeKind = "article_move"
	PendingArticleStateChangeKind PendingChangeKind = "article_state_change"
)

// PendingFolderAdd records a folder created locally that the service has not
// seen yet. Keyed by FolderLocalID.
type PendingFolderAdd struct {
	FolderLocalID int64  `json:"folder_local_id"`
	Title         string `json:"title"`
}

// PendingFolderDelete records a synced folder deleted locally. Keyed by
// ServiceID. Title, Position and ShouldSync are captured at delete time so a
// folder re-created with the same title can take the remote identity back.
type PendingFolderDelete struct {
	ServiceID  int64  `json:"service_id"`
	Title      string `json:"title"`
	Position   int64  `json:"position"`
	ShouldSync bool   `json:"should_sync"`
}

// PendingArticleAdd records a URL saved while offline. Keyed by URL.
type PendingArticleAdd struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
}

// PendingArticleDelete records a locally deleted article. Keyed by ArticleID.
type PendingArticleDelete struct {
	ArticleID int64 `json:"article_id"`
}

// PendingArticleMove records the latest local move of an article. Keyed by
// ArticleID.
type PendingArticleMove struct {
	ArticleID                int64 `json:"article_id"`
	DestinationFolderLocalID int64 `json:"destination_folder_local_id"`
}

// PendingArticleStateChange records the desired liked value of an article.
// Keyed by ArticleID.
type PendingArticleStateChange struct {
	ArticleID int64 `json:"article_id"`
	Liked     bool  `json:"liked"`
}

// PendingChanges is a snapshot of every outstanding intent.
type PendingChanges struct {
	FolderAdds          []PendingFolderAdd
	FolderDeletes       []PendingFolderDelete
	ArticleAdds         []PendingArticleAdd
	ArticleDeletes      []PendingArticleDelete
	ArticleMoves        []PendingArticleMove
	ArticleStateChanges []PendingArticleStateChange
}

// Len returns the total number of pending rows in the snapshot.
func (p PendingChanges) Len() int {
	return len(p.FolderAdds) + len(p.FolderDeletes) + len(p.ArticleAdds) +
		len(p.ArticleDeletes) + len(p.ArticleMoves) + len(p.ArticleStateChanges)
}
