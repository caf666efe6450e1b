// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the read-later client runtime.
//
// It opens the local store, attaches the change ledger, connects the remote
// adapter and either runs the background sync worker until interrupted or
// executes a single command against the local cache.
package client
