package check

import (
	"fmt"
)

// Rule names the convention a violation breaks.
type Rule string

// Violation is a single diagnostic. Line is 1-based; it is 0 for problems that
// concern the whole file, such as a malformed include guard.
type Violation struct {
	Path    string
	Line    int
	Rule    Rule
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	Path       string
	Violations []Violation
	// Err is set when the file could not be read; no checks ran.
	Err error
	// BraceDepth is the depth left at the end of the file. Non-zero means the
	// braces are unbalanced.
	BraceDepth int
}

// Passed reports whether the file was read and broke no rule.
func (r *FileResult) Passed() bool {
	return r.Err == nil && len(r.Violations) == 0
}

// Summary aggregates the results of a run.
type Summary struct {
	Files      int
	Failed     []string
	Violations int
}

// Add folds a file result into the summary.
func (s *Summary) Add(r *FileResult) {
	s.Files++
	s.Violations += len(r.Violations)
	if !r.Passed() {
		s.Failed = append(s.Failed, r.Path)
	}
}

// Passed reports whether every file passed.
func (s *Summary) Passed() bool {
	return len(s.Failed) == 0
}
