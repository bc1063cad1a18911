package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/andyballingall/cstylecheck/internal/check"
	"github.com/andyballingall/cstylecheck/internal/repo"
)

// Manager defines the operations behind the command line.
type Manager interface {
	// CheckFiles checks every path once and returns the aggregated outcome.
	CheckFiles(ctx context.Context, paths []string) (*check.Summary, error)
	// WatchFiles checks every path, then re-checks each one whenever it is written,
	// until ctx is cancelled. A non-nil readyChan is signalled once watching starts.
	WatchFiles(ctx context.Context, paths []string, readyChan chan<- struct{}) error
	// StagedFiles lists the C source and header files staged for commit.
	StagedFiles() ([]string, error)
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner  Manager
	closer io.Closer
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

// SetCloser registers a resource to release when the command finishes.
func (l *LazyManager) SetCloser(c io.Closer) {
	l.closer = c
}

// Close releases the resource registered with SetCloser, if any.
func (l *LazyManager) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) CheckFiles(ctx context.Context, paths []string) (*check.Summary, error) {
	return l.check().CheckFiles(ctx, paths)
}

func (l *LazyManager) WatchFiles(ctx context.Context, paths []string, readyChan chan<- struct{}) error {
	return l.check().WatchFiles(ctx, paths, readyChan)
}

func (l *LazyManager) StagedFiles() ([]string, error) {
	return l.check().StagedFiles()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger         *slog.Logger
	checker        *check.Checker
	reporter       check.Reporter
	gitter         repo.Gitter
	jobs           int
	reporterWriter io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	c *check.Checker,
	r check.Reporter,
	g repo.Gitter,
	w io.Writer,
) *CLIManager {
	return &CLIManager{
		logger:         l,
		checker:        c,
		reporter:       r,
		gitter:         g,
		jobs:           1,
		reporterWriter: w,
	}
}

// SetJobs sets how many files CheckFiles checks at once.
func (m *CLIManager) SetJobs(n int) {
	m.jobs = n
}

func (m *CLIManager) newRunner() *check.Runner {
	r := check.NewRunner(m.checker, m.reporter, m.reporterWriter, m.logger)
	r.SetJobs(m.jobs)
	return r
}

func (m *CLIManager) CheckFiles(ctx context.Context, paths []string) (*check.Summary, error) {
	cfg := m.checker.Config()
	m.logger.Debug("checking files", "files", len(paths), "jobs", m.jobs,
		"includeGuards", cfg.CheckIncludeGuards, "comments", cfg.CheckComments)

	return m.newRunner().Run(ctx, paths)
}

// WatchFiles runs a full check, then watches the files for changes. A file saved
// without changing its content is not reported again. Interrupting the watch is
// not an error.
func (m *CLIManager) WatchFiles(ctx context.Context, paths []string, readyChan chan<- struct{}) error {
	cache, err := check.NewResultCache(len(paths))
	if err != nil {
		return err
	}

	runner := m.newRunner()
	runner.SetCache(cache)

	m.logger.Debug("checking files before watching", "files", len(paths), "jobs", m.jobs)
	if _, err := runner.Run(ctx, paths); err != nil {
		return err
	}

	watcher, err := check.NewWatcher(paths, m.logger)
	if err != nil {
		return err
	}

	callback := func(path string) {
		res, rErr := runner.CheckOne(path)
		switch {
		case rErr != nil:
			m.logger.Error("Failed to write report", "error", rErr)
		case res == nil:
			return
		case res.Passed():
			m.logger.Info("No violations in", "path", path)
		default:
			m.logger.Info("Violations in", "path", path)
		}
	}

	// Forward watcher Ready signal if caller wants notification
	if readyChan != nil {
		go forwardReady(ctx, watcher.Ready, readyChan)
	}

	err = watcher.Watch(ctx, callback)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// forwardReady sends one signal on to once from is closed. It gives up when ctx is
// done, whether it is still waiting on from or on a reader of to.
func forwardReady(ctx context.Context, from <-chan struct{}, to chan<- struct{}) {
	select {
	case <-from:
	case <-ctx.Done():
		return
	}
	select {
	case to <- struct{}{}:
	case <-ctx.Done():
	}
}

func (m *CLIManager) StagedFiles() ([]string, error) {
	files, err := m.gitter.StagedFiles(check.SourceExtensions)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("found staged files", "files", len(files))
	return files, nil
}
