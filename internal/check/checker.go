// Package check runs the include guard and comment placement checks over source
// files and aggregates their results.
package check

import (
	"errors"

	"github.com/andyballingall/cstylecheck/internal/config"
	"github.com/andyballingall/cstylecheck/internal/guard"
	"github.com/andyballingall/cstylecheck/internal/scan"
)

// Checker applies the configured checks to one file at a time. It holds no
// per-file state and is safe for concurrent use.
type Checker struct {
	cfg config.Config
}

// NewChecker creates a Checker for the given configuration. A nil cfg enables
// every check.
func NewChecker(cfg *config.Config) *Checker {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Checker{cfg: *cfg}
}

// Config returns the configuration the checker applies.
func (c *Checker) Config() config.Config {
	return c.cfg
}

// CheckFile loads path and checks it. A file that cannot be read yields a result
// with Err set rather than an error.
func (c *Checker) CheckFile(path string) *FileResult {
	src, err := Load(path)
	if err != nil {
		return &FileResult{Path: path, Err: err}
	}
	return c.CheckSource(src)
}

// CheckSource checks a file that is already in memory. The include guard check
// runs first, for headers only; the comment scanner always runs.
func (c *Checker) CheckSource(src *SourceFile) *FileResult {
	res := &FileResult{Path: src.Path}

	if c.cfg.CheckIncludeGuards && guard.IsHeader(src.Path) {
		if err := guard.Validate(src.Lines); err != nil {
			res.Violations = append(res.Violations, guardViolation(src.Path, err))
		}
	}

	sc := scan.New(c.cfg.CheckComments)
	findings := sc.Scan(src.Lines)
	res.BraceDepth = sc.State().BraceDepth
	for _, f := range findings {
		res.Violations = append(res.Violations, Violation{
			Path:    src.Path,
			Line:    f.Line,
			Rule:    Rule(f.Kind.String()),
			Message: f.Message(),
		})
	}

	return res
}

func guardViolation(path string, err error) Violation {
	rule := Rule("IncludeGuard")
	var gErr guard.Error
	if errors.As(err, &gErr) {
		rule = Rule(gErr.Kind())
	}
	return Violation{
		Path:    path,
		Rule:    rule,
		Message: err.Error(),
	}
}
