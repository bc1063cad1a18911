package app

import (
	"errors"
)

// ErrViolations is returned when at least one file failed a check.
var ErrViolations = errors.New("style violations found")

// UsageError is returned when the command line cannot be acted on. It is reported
// before any source file is opened.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	if e.Reason == "" {
		return "no files to check"
	}
	return e.Reason
}

// Exit codes returned by the cstylecheck binary.
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitUsage      = 2
)

// ExitCode maps the error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var uErr *UsageError
	if errors.As(err, &uErr) {
		return ExitUsage
	}
	return ExitViolations
}
