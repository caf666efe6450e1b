// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes args. Without arguments it blocks until ctx is done.
	Run(ctx context.Context, args []string) error
	Close() error
}
