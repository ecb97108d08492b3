package ports

import "github.com/kaufmann-jan/octopost/internal/core/domain"

// ConfigLoader loads the run configuration from a working directory.
// A missing configuration file is not an error; it yields the zero
// configuration.
type ConfigLoader interface {
	Load(cwd string) (*domain.Config, error)
}
