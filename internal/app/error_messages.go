// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the error messages shared by the development
// bookmarking server and the client's remote adapter.
//
// The server writes a Msg* constant as the body of every error response and
// the adapter matches it to pick a precise error, so both sides must use the
// same wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	MsgInvalidID    = "invalid id"
	MsgInvalidLimit = "invalid limit"

	MsgInternalServerError = "internal server error"

	// MsgEmptyAuthorizationHeader and MsgWrongToken are returned with 401.
	MsgEmptyAuthorizationHeader   = "authorization header is empty"
	MsgInvalidAuthorizationHeader = "authorization header is not a bearer token"
	MsgWrongToken                 = "wrong token"

	MsgFolderNotFound   = "folder not found"
	MsgBookmarkNotFound = "bookmark not found"

	// MsgDuplicateFolder is returned with 409 when a folder title is taken.
	MsgDuplicateFolder = "folder with this title already exists"

	MsgEmptyTitle      = "title must not be empty"
	MsgEmptyURL        = "url must not be empty"
	MsgInvalidProgress = "progress must be within [0.0, 1.0]"

	// MsgWellKnownFolder is returned with 403 when Unread or Archive would be
	// renamed, moved or deleted.
	MsgWellKnownFolder = "well-known folders cannot be changed"
)
