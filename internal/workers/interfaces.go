// Package workers runs the background jobs of the server next to its
// transports. Each worker blocks in Run until its context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
