// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package remote implements an in-memory bookmarking service. It backs the
// development server and end-to-end sync tests with the same folder and
// bookmark semantics a hosted read-later service exposes.
package remote

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

const firstUserFolderID int64 = 1000

type bookmark struct {
	article  models.RemoteArticle
	folderID int64
}

// Service keeps folders and bookmarks in memory. It is safe for concurrent
// use.
type Service struct {
	mu sync.Mutex

	folders   map[int64]*models.RemoteFolder
	bookmarks map[int64]*bookmark

	nextFolderID   int64
	nextBookmarkID int64
	nextPosition   int64

	hashes utils.TokenGenerator
	now    func() time.Time

	logger *logger.Logger
}

// NewService returns an empty service. Unread and Archive always exist and
// cannot be listed, renamed or deleted as user folders.
func NewService(hashes utils.TokenGenerator, logger *logger.Logger) *Service {
	logger.Info().Msg("in-memory bookmarking service created")
	return &Service{
		folders:        make(map[int64]*models.RemoteFolder),
		bookmarks:      make(map[int64]*bookmark),
		nextFolderID:   firstUserFolderID,
		nextBookmarkID: 1,
		nextPosition:   1,
		hashes:         hashes,
		now:            time.Now,
		logger:         logger,
	}
}

func isWellKnown(folderID int64) bool {
	return folderID == models.UnreadFolderServiceID || folderID == models.ArchiveFolderServiceID
}

// folderExists must be called with mu held.
func (s *Service) folderExists(folderID int64) bool {
	if isWellKnown(folderID) {
		return true
	}
	_, ok := s.folders[folderID]
	return ok
}
