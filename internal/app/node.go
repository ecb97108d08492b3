package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/kaufmann-jan/octopost/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/kaufmann-jan/octopost/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/kaufmann-jan/octopost/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/kaufmann-jan/octopost/internal/core/ports"
)

// Components bundles everything the CLI needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, log, w), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
