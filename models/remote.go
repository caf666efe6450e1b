// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemoteFolder is a folder as the bookmarking service reports it.
type RemoteFolder struct {
	ServiceID  int64  `json:"folder_id"`
	Title      string `json:"title"`
	Position   int64  `json:"position"`
	ShouldSync bool   `json:"sync_to_mobile"`
}

// RemoteArticle is a bookmark as the bookmarking service reports it.
type RemoteArticle struct {
	ID                    int64     `json:"bookmark_id"`
	URL                   string    `json:"url"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	ReadProgress          float64   `json:"progress"`
	ReadProgressTimestamp time.Time `json:"progress_timestamp"`
	Hash                  string    `json:"hash"`
	Liked                 bool      `json:"starred"`
}

// AddFolderRequest is the body of a remote folder creation.
type AddFolderRequest struct {
	Title string `json:"title"`
}

// AddArticleRequest is the body of a remote bookmark creation.
type AddArticleRequest struct {
	URL   string  `json:"url"`
	Title *string `json:"title,omitempty"`
}

// MoveArticleRequest is the body of a remote bookmark move.
type MoveArticleRequest struct {
	FolderID int64 `json:"folder_id"`
}

// ReadProgressRequest is the body of a remote read progress update.
type ReadProgressRequest struct {
	Progress  float64   `json:"progress"`
	Timestamp time.Time `json:"progress_timestamp"`
}

// ToFolder converts the remote representation into a local folder value
// without a local id.
func (r RemoteFolder) ToFolder() Folder {
	return Folder{
		ServiceID:  Int64Ptr(r.ServiceID),
		Title:      r.Title,
		Position:   r.Position,
		ShouldSync: r.ShouldSync,
	}
}

// ToArticle converts the remote representation into a local article that
// belongs to folderLocalID.
func (r RemoteArticle) ToArticle(folderLocalID *int64) Article {
	return Article{
		ID:                    r.ID,
		URL:                   r.URL,
		Title:                 r.Title,
		Description:           r.Description,
		ReadProgress:          r.ReadProgress,
		ReadProgressTimestamp: r.ReadProgressTimestamp,
		Hash:                  r.Hash,
		Liked:                 r.Liked,
		FolderLocalID:         folderLocalID,
	}
}
