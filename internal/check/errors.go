package check

import (
	"fmt"
)

// ReadError is returned when a source file cannot be loaded.
type ReadError struct {
	Wrapped error
	Path    string
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read file: %v", e.Wrapped)
}

func (e *ReadError) Unwrap() error {
	return e.Wrapped
}
