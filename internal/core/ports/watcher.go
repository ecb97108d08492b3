package ports

import (
	"context"
	"iter"
)

// WatchOp classifies a file system event.
type WatchOp int

const (
	// OpWrite indicates a file was written.
	OpWrite WatchOp = iota
	// OpCreate indicates a file or directory was created.
	OpCreate
	// OpRemove indicates a file or directory was removed.
	OpRemove
)

// WatchEvent is one file system change under the watched root.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher observes a directory tree for changes. Used by watch mode to
// trigger re-queries of a live case; staleness detection itself stays
// fingerprint-driven.
type Watcher interface {
	// Start begins watching the given root recursively.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator over file system events. The iterator
	// ends when the watcher stops or the context is cancelled.
	Events() iter.Seq[WatchEvent]
}
