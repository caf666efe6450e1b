// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote contracts consumed by the sync engine
// and the article content downloader.
//
// [FolderClient] and [ArticleClient] decouple the service layer from the
// bookmarking service protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrDuplicateFolder] for a
// rejected folder title).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-read-later/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FolderClient manages folders on the bookmarking service.
type FolderClient interface {
	// Add creates a folder titled title. Returns [ErrDuplicateFolder]
	// (wrapped) when the service already has a folder with that title.
	Add(ctx context.Context, title string) (models.RemoteFolder, error)

	// Delete removes the folder. Returns [ErrNotFound] (wrapped) when the
	// folder no longer exists remotely.
	Delete(ctx context.Context, serviceID int64) error

	// List returns every user folder. Unread, Archive and Liked are never
	// part of the listing.
	List(ctx context.Context) ([]models.RemoteFolder, error)
}

// ArticleClient manages bookmarks on the bookmarking service. Every method
// addressing a single bookmark returns [ErrNotFound] (wrapped) when the
// bookmark, or the destination folder of a move, does not exist remotely.
type ArticleClient interface {
	Add(ctx context.Context, url string, title *string) (models.RemoteArticle, error)
	Delete(ctx context.Context, id int64) error
	Move(ctx context.Context, id int64, destinationFolderServiceID int64) error
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error

	// UpdateReadProgress pushes progress and returns the article with the
	// hash issued by the service.
	UpdateReadProgress(ctx context.Context, id int64, progress float64, timestamp time.Time) (models.RemoteArticle, error)

	// List returns at most limit bookmarks of the folder. folderServiceID may
	// be one of the well-known ids, including the virtual Liked listing.
	List(ctx context.Context, folderServiceID int64, limit int) ([]models.RemoteArticle, error)
}

// RemoteService is the full bookmarking service contract.
type RemoteService interface {
	Folders() FolderClient
	Articles() ArticleClient
}

// ContentDownloader fetches an article body for offline reading. It returns
// [ErrNotFound] (wrapped) when the article page no longer exists.
type ContentDownloader interface {
	DownloadArticle(ctx context.Context, article models.Article) (models.LocalOnlyState, error)
}
