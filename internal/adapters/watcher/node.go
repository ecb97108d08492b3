package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
)

const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})
}

// DefaultDebounceWindow is the default time window for debouncing file
// events. Solvers append to every monitored file once per write
// interval; a few hundred milliseconds batches one interval's burst.
const DefaultDebounceWindow = 300 * time.Millisecond
