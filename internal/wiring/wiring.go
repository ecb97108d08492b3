// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/kaufmann-jan/octopost/internal/adapters/config"
	_ "github.com/kaufmann-jan/octopost/internal/adapters/logger"
	_ "github.com/kaufmann-jan/octopost/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/kaufmann-jan/octopost/internal/app"
)
