// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	countWellKnownFolders = `SELECT COUNT(*) FROM folders WHERE local_id IN (?, ?);`

	folderColumns = `local_id, service_id, title, position, should_sync`

	insertFolder = `
		INSERT INTO folders (service_id, title, position, should_sync)
		VALUES (?, ?, ?, ?)
		RETURNING ` + folderColumns + `;`

	getFolderByLocalID   = `SELECT ` + folderColumns + ` FROM folders WHERE local_id = ?;`
	getFolderByServiceID = `SELECT ` + folderColumns + ` FROM folders WHERE service_id = ?;`
	getFolderByTitle     = `SELECT ` + folderColumns + ` FROM folders WHERE title = ?;`
	listFolders          = `SELECT ` + folderColumns + ` FROM folders ORDER BY position, local_id;`

	updateFolder = `
		UPDATE folders
		SET service_id = ?, title = ?, position = ?, should_sync = ?
		WHERE local_id = ?;`

	deleteFolder = `DELETE FROM folders WHERE local_id = ?;`

	articleColumns = `a.id, a.url, a.title, a.description, a.read_progress, a.read_progress_timestamp,
		a.hash, a.liked, a.folder_local_id,
		s.article_id, s.available_locally, s.local_path, s.extracted_description,
		s.article_unavailable, s.include_in_mru`

	articleFrom = ` FROM articles a LEFT JOIN article_local_only_state s ON s.article_id = a.id`

	upsertArticle = `
		INSERT INTO articles (
			id,
			url,
			title,
			description,
			read_progress,
			read_progress_timestamp,
			hash,
			liked,
			folder_local_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			description = excluded.description,
			read_progress = excluded.read_progress,
			read_progress_timestamp = excluded.read_progress_timestamp,
			hash = excluded.hash,
			liked = excluded.liked,
			folder_local_id = excluded.folder_local_id;`

	getArticle = `SELECT ` + articleColumns + articleFrom + ` WHERE a.id = ?;`

	updateArticle = `
		UPDATE articles
		SET url = ?, title = ?, description = ?, read_progress = ?, read_progress_timestamp = ?,
			hash = ?, liked = ?, folder_local_id = ?
		WHERE id = ?;`

	deleteArticle = `DELETE FROM articles WHERE id = ?;`

	setArticleFolder = `UPDATE articles SET folder_local_id = ? WHERE id = ?;`

	setArticleLiked = `UPDATE articles SET liked = ? WHERE id = ?;`

	setArticleReadProgress = `
		UPDATE articles
		SET read_progress = ?, read_progress_timestamp = ?, hash = ?
		WHERE id = ?;`

	localOnlyStateColumns = `article_id, available_locally, local_path, extracted_description,
		article_unavailable, include_in_mru`

	getLocalOnlyState = `SELECT ` + localOnlyStateColumns + ` FROM article_local_only_state WHERE article_id = ?;`

	upsertLocalOnlyState = `
		INSERT INTO article_local_only_state (` + localOnlyStateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (article_id) DO UPDATE SET
			available_locally = excluded.available_locally,
			local_path = excluded.local_path,
			extracted_description = excluded.extracted_description,
			article_unavailable = excluded.article_unavailable,
			include_in_mru = excluded.include_in_mru;`

	deleteLocalOnlyState = `DELETE FROM article_local_only_state WHERE article_id = ?;`

	articleExists = `SELECT EXISTS (SELECT 1 FROM articles WHERE id = ?);`
	folderExists  = `SELECT EXISTS (SELECT 1 FROM folders WHERE local_id = ?);`
)

// Pending-change statements.
const (
	insertPendingFolderAdd = `INSERT INTO pending_folder_adds (folder_local_id, title) VALUES (?, ?);`
	getPendingFolderAdd    = `SELECT folder_local_id, title FROM pending_folder_adds WHERE folder_local_id = ?;`
	listPendingFolderAdds  = `SELECT folder_local_id, title FROM pending_folder_adds ORDER BY rowid;`
	deletePendingFolderAdd = `DELETE FROM pending_folder_adds WHERE folder_local_id = ?;`

	pendingFolderDeleteColumns = `service_id, title, position, should_sync`

	insertPendingFolderDelete     = `INSERT INTO pending_folder_deletes (` + pendingFolderDeleteColumns + `) VALUES (?, ?, ?, ?);`
	getPendingFolderDelete        = `SELECT ` + pendingFolderDeleteColumns + ` FROM pending_folder_deletes WHERE service_id = ?;`
	getPendingFolderDeleteByTitle = `SELECT ` + pendingFolderDeleteColumns + ` FROM pending_folder_deletes WHERE title = ? ORDER BY service_id DESC LIMIT 1;`
	listPendingFolderDeletes      = `SELECT ` + pendingFolderDeleteColumns + ` FROM pending_folder_deletes ORDER BY rowid;`
	deletePendingFolderDelete     = `DELETE FROM pending_folder_deletes WHERE service_id = ?;`

	insertPendingArticleAdd = `INSERT INTO pending_article_adds (url, title) VALUES (?, ?);`
	getPendingArticleAdd    = `SELECT url, title FROM pending_article_adds WHERE url = ?;`
	listPendingArticleAdds  = `SELECT url, title FROM pending_article_adds ORDER BY rowid;`
	deletePendingArticleAdd = `DELETE FROM pending_article_adds WHERE url = ?;`

	insertPendingArticleDelete = `INSERT INTO pending_article_deletes (article_id) VALUES (?);`
	getPendingArticleDelete    = `SELECT article_id FROM pending_article_deletes WHERE article_id = ?;`
	listPendingArticleDeletes  = `SELECT article_id FROM pending_article_deletes ORDER BY rowid;`
	deletePendingArticleDelete = `DELETE FROM pending_article_deletes WHERE article_id = ?;`

	insertPendingArticleMove = `INSERT INTO pending_article_moves (article_id, destination_folder_local_id) VALUES (?, ?);`
	getPendingArticleMove    = `SELECT article_id, destination_folder_local_id FROM pending_article_moves WHERE article_id = ?;`
	deletePendingArticleMove = `DELETE FROM pending_article_moves WHERE article_id = ?;`

	insertPendingArticleStateChange = `INSERT INTO pending_article_state_changes (article_id, liked) VALUES (?, ?);`
	getPendingArticleStateChange    = `SELECT article_id, liked FROM pending_article_state_changes WHERE article_id = ?;`
	listPendingArticleStateChanges  = `SELECT article_id, liked FROM pending_article_state_changes ORDER BY rowid;`
	deletePendingArticleStateChange = `DELETE FROM pending_article_state_changes WHERE article_id = ?;`
)
