package check

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Reporter defines the interface for writing check results.
type Reporter interface {
	// WriteFile is called once per file, as soon as that file has been checked.
	WriteFile(w io.Writer, r *FileResult) error
	// WriteSummary is called once at the end of a run.
	WriteSummary(w io.Writer, s *Summary) error
}

// Runner checks a list of files and reports each one as it completes.
type Runner struct {
	checker  *Checker
	reporter Reporter
	w        io.Writer
	logger   *slog.Logger
	jobs     int
	cache    *ResultCache

	// mu serialises reporting so one file's diagnostics are never interleaved
	// with another's.
	mu sync.Mutex
}

// NewRunner creates a Runner writing through reporter to w.
func NewRunner(c *Checker, reporter Reporter, w io.Writer, logger *slog.Logger) *Runner {
	return &Runner{
		checker:  c,
		reporter: reporter,
		w:        w,
		logger:   logger,
		jobs:     1,
	}
}

// SetJobs sets how many files are checked at once. Values below 2 check files
// one at a time, in the order given, which is the default.
func (r *Runner) SetJobs(n int) {
	if n < 1 {
		n = 1
	}
	r.jobs = n
}

// SetCache makes CheckOne skip files whose content has not changed since they
// were last checked by this Runner.
func (r *Runner) SetCache(c *ResultCache) {
	r.cache = c
}

// Run checks every path and returns the aggregated summary. Style violations are
// not errors; an error is returned only if reporting fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, paths []string) (*Summary, error) {
	sum := &Summary{}

	if r.jobs == 1 {
		for _, p := range paths {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
			if err := r.record(sum, r.checkPath(p, true)); err != nil {
				return sum, err
			}
		}
		return sum, r.summarise(sum)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return r.record(sum, r.checkPath(p, true))
		})
	}

	if err := g.Wait(); err != nil {
		return sum, err
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}

	return sum, r.summarise(sum)
}

// CheckOne checks a single file and reports it, without writing a summary. With a
// cache set, it returns a nil result and reports nothing when the content is
// unchanged.
func (r *Runner) CheckOne(path string) (*FileResult, error) {
	res := r.checkPath(path, false)
	if res == nil {
		return nil, nil
	}
	return res, r.record(&Summary{}, res)
}

// checkPath loads and checks path. It returns nil only when a cache is set, the
// content is unchanged and force is false.
func (r *Runner) checkPath(path string, force bool) *FileResult {
	if r.cache == nil {
		return r.checker.CheckFile(path)
	}

	src, err := Load(path)
	if err != nil {
		r.cache.Forget(path)
		return &FileResult{Path: path, Err: err}
	}

	if !r.cache.Remember(src) && !force {
		r.logger.Debug("content unchanged", "path", path)
		return nil
	}

	return r.checker.CheckSource(src)
}

func (r *Runner) record(sum *Summary, res *FileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum.Add(res)

	switch {
	case res.Err != nil:
		r.logger.Debug("file not checked", "path", res.Path, "error", res.Err)
	case res.BraceDepth != 0:
		r.logger.Debug("unbalanced braces", "path", res.Path, "depth", res.BraceDepth)
	default:
		r.logger.Debug("checked file", "path", res.Path, "violations", len(res.Violations))
	}

	return r.reporter.WriteFile(r.w, res)
}

func (r *Runner) summarise(sum *Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reporter.WriteSummary(r.w, sum)
}
