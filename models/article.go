// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// ErrInvalidReadProgress is returned when a read progress value falls outside
// the inclusive [0.0, 1.0] range.
var ErrInvalidReadProgress = errors.New("read progress must be within [0.0, 1.0]")

// Article is a locally cached bookmark.
//
// ID is shared between the local cache and the remote service. Hash is an
// opaque token issued by the service (or by the local store when progress
// changes offline) and is only ever compared for equality.
type Article struct {
	ID                    int64     `json:"id"`
	URL                   string    `json:"url"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	ReadProgress          float64   `json:"read_progress"`
	ReadProgressTimestamp time.Time `json:"read_progress_timestamp"`
	Hash                  string    `json:"hash"`
	Liked                 bool      `json:"liked"`

	// FolderLocalID is the local folder the article belongs to. Nil means the
	// article belongs to no folder (only liked articles stay that way).
	FolderLocalID *int64 `json:"folder_local_id,omitempty"`

	// LocalOnly holds state that never leaves this device.
	LocalOnly *LocalOnlyState `json:"local_only,omitempty"`
}

// LocalOnlyState is device-local article state produced by the content
// downloader.
type LocalOnlyState struct {
	ArticleID            int64  `json:"article_id"`
	AvailableLocally     bool   `json:"available_locally"`
	LocalPath            string `json:"local_path,omitempty"`
	ExtractedDescription string `json:"extracted_description,omitempty"`
	ArticleUnavailable   bool   `json:"article_unavailable"`
	IncludeInMRU         bool   `json:"include_in_mru"`
}

// ValidateReadProgress checks that progress is a valid fraction.
func ValidateReadProgress(progress float64) error {
	if progress < 0.0 || progress > 1.0 {
		return ErrInvalidReadProgress
	}
	return nil
}

// InFolder reports whether a belongs to the folder with the given local id.
func (a Article) InFolder(folderLocalID int64) bool {
	return a.FolderLocalID != nil && *a.FolderLocalID == folderLocalID
}
