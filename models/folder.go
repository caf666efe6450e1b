// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known folders. They are seeded by the local store, always exist, and
// never take part in pending folder adds or deletes.
const (
	UnreadFolderLocalID  int64 = 1
	ArchiveFolderLocalID int64 = 2

	UnreadFolderServiceID  int64 = -1
	ArchiveFolderServiceID int64 = -2
	// LikedFolderServiceID addresses the virtual listing of liked articles.
	// It has no local folder.
	LikedFolderServiceID int64 = -3

	UnreadFolderPosition  int64 = -2
	ArchiveFolderPosition int64 = -1

	UnreadFolderTitle  = "Unread"
	ArchiveFolderTitle = "Archive"
)

// Folder is a locally cached folder.
//
// LocalID is assigned by the local store and never renumbered. ServiceID
// stays nil until the folder has been created on (or matched to) the remote
// service.
type Folder struct {
	LocalID    int64  `json:"local_id"`
	ServiceID  *int64 `json:"service_id,omitempty"`
	Title      string `json:"title"`
	Position   int64  `json:"position"`
	ShouldSync bool   `json:"should_sync"`
}

// IsWellKnown reports whether f is the Unread or Archive folder.
func (f Folder) IsWellKnown() bool {
	return IsWellKnownFolder(f.LocalID)
}

// IsSynced reports whether f has ever been matched to a remote folder.
func (f Folder) IsSynced() bool {
	return f.ServiceID != nil
}

// IsWellKnownFolder reports whether localID belongs to Unread or Archive.
func IsWellKnownFolder(localID int64) bool {
	return localID == UnreadFolderLocalID || localID == ArchiveFolderLocalID
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}

// StringPtr returns a pointer to v.
func StringPtr(v string) *string {
	return &v
}
