// Package app implements the application layer for octopost.
package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kaufmann-jan/octopost"
	"github.com/kaufmann-jan/octopost/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"github.com/kaufmann-jan/octopost/internal/core/domain"
	"github.com/kaufmann-jan/octopost/internal/core/ports"
	"github.com/kaufmann-jan/octopost/pkg/table"
	"go.trai.ch/zerr"
)

// RunOptions carries the command-line settings of one invocation.
// Unset numeric bounds are the infinities; flags override the
// configuration file, which overrides the defaults.
type RunOptions struct {
	CaseDir     string
	Dir         string
	File        string
	Object      string
	TMin        float64
	TMax        float64
	CSV         bool
	ContentSum  bool
	AbsoluteCoG bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	log          ports.Logger
	watcher      ports.Watcher
	out          io.Writer
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, w ports.Watcher) *App {
	return &App{
		configLoader: loader,
		log:          log,
		watcher:      w,
		out:          os.Stdout,
	}
}

// SetOutput redirects data output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Query reads one table per requested kind and prints them. The kinds
// are read concurrently; each reader itself stays single-threaded.
func (a *App) Query(ctx context.Context, kindNames []string, opts RunOptions) error {
	if len(kindNames) == 0 {
		return domain.ErrNoKindsSpecified
	}

	readers, err := a.newReaders(kindNames, opts)
	if err != nil {
		return err
	}

	tables := make([]*table.Table, len(readers))
	g, _ := errgroup.WithContext(ctx)
	for i, r := range readers {
		g.Go(func() error {
			tbl, readErr := r.GetData()
			if readErr != nil {
				return zerr.With(readErr, "kind", string(r.Kind()))
			}
			tables[i] = tbl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, tbl := range tables {
		if len(readers) > 1 {
			if _, err := fmt.Fprintf(a.out, "# %s\n", readers[i].Kind()); err != nil {
				return err
			}
		}
		if err := a.print(tbl, opts.CSV); err != nil {
			return err
		}
	}
	return nil
}

// Fields prints the data column names of one kind.
func (a *App) Fields(_ context.Context, kindName string, opts RunOptions) error {
	r, err := a.newReader(kindName, opts)
	if err != nil {
		return err
	}
	fields, err := r.Fields()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if _, err := fmt.Fprintln(a.out, f); err != nil {
			return err
		}
	}
	return nil
}

// Watch follows one kind of a running case: it prints the current
// table, then appends rows as the solver writes them, until the
// context is cancelled.
func (a *App) Watch(ctx context.Context, kindName string, opts RunOptions) error {
	r, err := a.newReader(kindName, opts)
	if err != nil {
		return err
	}

	tbl, err := r.GetData()
	if err != nil {
		return err
	}
	last, err := a.printTail(tbl, math.Inf(-1), true)
	if err != nil {
		return err
	}

	root := filepath.Join(a.caseDir(opts), domain.PostProcessingDir)
	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.Wrap(err, "failed to start watching case")
	}
	defer func() {
		if stopErr := a.watcher.Stop(); stopErr != nil {
			a.log.Error(stopErr)
		}
	}()
	a.log.Info("watching " + root)

	refresh := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		select {
		case refresh <- struct{}{}:
		default:
		}
	})
	go func() {
		for event := range a.watcher.Events() {
			deb.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-refresh:
			tbl, err := r.GetData()
			if err != nil {
				// The solver may be mid-write; the next event retries.
				a.log.Error(err)
				continue
			}
			last, err = a.printTail(tbl, last, false)
			if err != nil {
				return err
			}
		}
	}
}

func (a *App) newReaders(kindNames []string, opts RunOptions) ([]*octopost.Reader, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	readers := make([]*octopost.Reader, len(kindNames))
	for i, name := range kindNames {
		kind := domain.Kind(name)
		r, err := octopost.NewReader(kind, a.readerOptions(cfg, kind, opts)...)
		if err != nil {
			return nil, err
		}
		readers[i] = r
	}
	return readers, nil
}

func (a *App) newReader(kindName string, opts RunOptions) (*octopost.Reader, error) {
	readers, err := a.newReaders([]string{kindName}, opts)
	if err != nil {
		return nil, err
	}
	return readers[0], nil
}

// readerOptions merges flags over the configuration file.
func (a *App) readerOptions(cfg *domain.Config, kind domain.Kind, o RunOptions) []octopost.Option {
	override := cfg.Overrides[kind]

	caseDir := o.CaseDir
	if caseDir == "" {
		caseDir = cfg.CaseDir
	}
	dir := o.Dir
	if dir == "" {
		dir = override.Dir
	}
	file := o.File
	if file == "" {
		file = override.File
	}
	object := o.Object
	if object == "" {
		object = override.Object
	}

	tmin, tmax := o.TMin, o.TMax
	if math.IsInf(tmin, -1) && cfg.TMin != nil {
		tmin = *cfg.TMin
	}
	if math.IsInf(tmax, 1) && cfg.TMax != nil {
		tmax = *cfg.TMax
	}

	options := []octopost.Option{octopost.WithLogger(a.log)}
	if caseDir != "" {
		options = append(options, octopost.WithCaseDir(caseDir))
	}
	if dir != "" {
		options = append(options, octopost.WithDir(dir))
	}
	if file != "" {
		options = append(options, octopost.WithFileName(file))
	}
	if object != "" {
		options = append(options, octopost.WithObject(object))
	}
	if !math.IsInf(tmin, -1) || !math.IsInf(tmax, 1) {
		options = append(options, octopost.WithTimeWindow(tmin, tmax))
	}
	if o.ContentSum || cfg.ContentSum {
		options = append(options, octopost.WithContentFingerprint())
	}
	if o.AbsoluteCoG {
		options = append(options, octopost.WithAbsoluteCoG())
	}
	return options
}

func (a *App) caseDir(o RunOptions) string {
	if o.CaseDir != "" {
		return o.CaseDir
	}
	if cfg, err := a.configLoader.Load("."); err == nil && cfg.CaseDir != "" {
		return cfg.CaseDir
	}
	return "."
}

func (a *App) print(tbl *table.Table, csv bool) error {
	if csv {
		return tbl.WriteCSV(a.out)
	}
	return tbl.Format(a.out)
}

// printTail prints the rows after the given time and returns the new
// high-water mark.
func (a *App) printTail(tbl *table.Table, after float64, header bool) (float64, error) {
	if header {
		if _, err := fmt.Fprintln(a.out, strings.Join(tbl.Columns(), "  ")); err != nil {
			return after, err
		}
	}
	last := after
	for i := 0; i < tbl.Len(); i++ {
		tv := tbl.Value(i, domain.TimeColumn)
		if tv <= after {
			continue
		}
		row := tbl.Row(i)
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = fmt.Sprintf("%g", v)
		}
		if _, err := fmt.Fprintln(a.out, strings.Join(cells, "  ")); err != nil {
			return last, err
		}
		if tv > last {
			last = tv
		}
	}
	return last, nil
}
