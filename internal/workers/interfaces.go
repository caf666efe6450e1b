// Package workers runs the client's background workers: an initial pass
// on start, then periodic work until the context ends or Stop is called.
package workers

import "context"

// Worker is a background task with an explicit lifecycle. Run must not
// block; Stop blocks until the worker has exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
