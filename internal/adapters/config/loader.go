// Package config provides the configuration loader for octopost.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file looked up in the working directory.
const Filename = "octopost.yaml"

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a loader for the default file name.
func NewLoader(log ports.Logger) *FileLoader {
	return &FileLoader{Filename: Filename, log: log}
}

// Load reads the configuration from the given working directory. A
// missing file yields the zero configuration without error.
func (l *FileLoader) Load(cwd string) (*domain.Config, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.log != nil {
				l.log.Info("no configuration file found, using defaults")
			}
			return &domain.Config{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file CaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return resolve(&file)
}

// resolve validates the parsed file and converts it to the domain form.
func resolve(file *CaseFile) (*domain.Config, error) {
	if file.Window.TMin != nil && file.Window.TMax != nil && *file.Window.TMin > *file.Window.TMax {
		return nil, zerr.With(
			zerr.With(domain.ErrInvalidTimeWindow, "tmin", *file.Window.TMin),
			"tmax", *file.Window.TMax,
		)
	}

	cfg := &domain.Config{
		CaseDir:    file.Case,
		TMin:       file.Window.TMin,
		TMax:       file.Window.TMax,
		ContentSum: file.ContentFingerprint,
	}

	if len(file.Series) > 0 {
		cfg.Overrides = make(map[domain.Kind]domain.SeriesOverride, len(file.Series))
		known := map[domain.Kind]bool{}
		for _, kind := range domain.Kinds() {
			known[kind] = true
		}
		for name, dto := range file.Series {
			kind := domain.Kind(name)
			if !known[kind] {
				return nil, zerr.With(domain.ErrUnknownKind, "kind", name)
			}
			cfg.Overrides[kind] = domain.SeriesOverride{
				Dir:    dto.Dir,
				File:   dto.File,
				Object: dto.Object,
			}
		}
	}

	return cfg, nil
}
