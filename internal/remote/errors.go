// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package remote

import "errors"

var (
	ErrFolderNotFound   = errors.New("folder not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrDuplicateFolder  = errors.New("folder with this title already exists")
	ErrEmptyTitle       = errors.New("folder title is empty")
	ErrEmptyURL         = errors.New("bookmark url is empty")
	ErrWellKnownFolder  = errors.New("well-known folder cannot be changed")
	ErrInvalidProgress  = errors.New("invalid read progress")
)
