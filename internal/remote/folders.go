package remote

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
)

// ListFolders returns user folders ordered by position, then id.
func (s *Service) ListFolders(ctx context.Context) []models.RemoteFolder {
	s.mu.Lock()
	defer s.mu.Unlock()

	folders := make([]models.RemoteFolder, 0, len(s.folders))
	for _, f := range s.folders {
		folders = append(folders, *f)
	}
	slices.SortFunc(folders, func(a, b models.RemoteFolder) int {
		return cmp.Or(cmp.Compare(a.Position, b.Position), cmp.Compare(a.ServiceID, b.ServiceID))
	})

	return folders
}

func (s *Service) AddFolder(ctx context.Context, title string) (models.RemoteFolder, error) {
	log := logger.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return models.RemoteFolder{}, ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if title == models.UnreadFolderTitle || title == models.ArchiveFolderTitle {
		return models.RemoteFolder{}, fmt.Errorf("%w: %q", ErrDuplicateFolder, title)
	}
	for _, f := range s.folders {
		if f.Title == title {
			return models.RemoteFolder{}, fmt.Errorf("%w: %q", ErrDuplicateFolder, title)
		}
	}

	folder := &models.RemoteFolder{
		ServiceID:  s.nextFolderID,
		Title:      title,
		Position:   s.nextPosition,
		ShouldSync: true,
	}
	s.nextFolderID++
	s.nextPosition++
	s.folders[folder.ServiceID] = folder

	log.Debug().Str("func", "remote.AddFolder").Int64("folder_id", folder.ServiceID).Str("title", title).Msg("folder created")
	return *folder, nil
}

// FolderUpdate carries optional changes to a user folder.
type FolderUpdate struct {
	Title      *string `json:"title,omitempty"`
	Position   *int64  `json:"position,omitempty"`
	ShouldSync *bool   `json:"sync_to_mobile,omitempty"`
}

func (s *Service) UpdateFolder(ctx context.Context, folderID int64, update FolderUpdate) (models.RemoteFolder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isWellKnown(folderID) {
		return models.RemoteFolder{}, ErrWellKnownFolder
	}
	folder, ok := s.folders[folderID]
	if !ok {
		return models.RemoteFolder{}, fmt.Errorf("%w: %d", ErrFolderNotFound, folderID)
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return models.RemoteFolder{}, ErrEmptyTitle
		}
		for id, f := range s.folders {
			if id != folderID && f.Title == title {
				return models.RemoteFolder{}, fmt.Errorf("%w: %q", ErrDuplicateFolder, title)
			}
		}
		folder.Title = title
	}
	if update.Position != nil {
		folder.Position = *update.Position
	}
	if update.ShouldSync != nil {
		folder.ShouldSync = *update.ShouldSync
	}

	return *folder, nil
}

// DeleteFolder removes a user folder. Its bookmarks go to the Archive.
func (s *Service) DeleteFolder(ctx context.Context, folderID int64) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if isWellKnown(folderID) {
		return ErrWellKnownFolder
	}
	if _, ok := s.folders[folderID]; !ok {
		return fmt.Errorf("%w: %d", ErrFolderNotFound, folderID)
	}

	delete(s.folders, folderID)
	archived := 0
	for _, b := range s.bookmarks {
		if b.folderID == folderID {
			b.folderID = models.ArchiveFolderServiceID
			archived++
		}
	}

	log.Debug().Str("func", "remote.DeleteFolder").Int64("folder_id", folderID).Int("archived", archived).Msg("folder deleted")
	return nil
}
