package guard

import (
	"fmt"
)

// Kind names the guard rule a header breaks.
type Kind string

// Rule kinds, one per error type below.
const (
	KindMissingGuard            Kind = "MissingGuard"            // too few lines for a guard
	KindMalformedLeadingComment Kind = "MalformedLeadingComment" // leading comment not closed
	KindMissingIfndef           Kind = "MissingIfndef"           // first guard line is not #ifndef NAME
	KindBadGuardName            Kind = "BadGuardName"            // NAME has lowercase or a bad suffix
	KindBadDefineLine           Kind = "BadDefineLine"           // second guard line is not #define NAME
	KindBadEndifLine            Kind = "BadEndifLine"            // last line is not #endif /* NAME */
)

// Error is implemented by every guard violation.
type Error interface {
	error
	Kind() Kind
}

var (
	_ Error = (*MissingGuardError)(nil)
	_ Error = (*MalformedLeadingCommentError)(nil)
	_ Error = (*MissingIfndefError)(nil)
	_ Error = (*BadGuardNameError)(nil)
	_ Error = (*BadDefineLineError)(nil)
	_ Error = (*BadEndifLineError)(nil)
)

// MissingGuardError is returned when a header is too short to hold a guard, either
// outright or after its leading comment is skipped.
type MissingGuardError struct{}

func (e *MissingGuardError) Error() string { return "header-file missing include guard" }
func (e *MissingGuardError) Kind() Kind    { return KindMissingGuard }

// MalformedLeadingCommentError is returned when a header opens a block comment on its
// first line and never closes it.
type MalformedLeadingCommentError struct{}

func (e *MalformedLeadingCommentError) Error() string { return "leading comment is never closed" }
func (e *MalformedLeadingCommentError) Kind() Kind    { return KindMalformedLeadingComment }

// MissingIfndefError is returned when the first guard line is not "#ifndef NAME".
type MissingIfndefError struct{}

func (e *MissingIfndefError) Error() string { return "first line missing #ifndef" }
func (e *MissingIfndefError) Kind() Kind    { return KindMissingIfndef }

// BadGuardNameError is returned when the guard name contains a lowercase letter or
// does not end in _H or _HPP.
type BadGuardNameError struct {
	Name string
}

func (e *BadGuardNameError) Error() string {
	return fmt.Sprintf("bad include guard name '%s'", e.Name)
}
func (e *BadGuardNameError) Kind() Kind { return KindBadGuardName }

// BadDefineLineError is returned when the second guard line does not define the
// name tested by #ifndef.
type BadDefineLineError struct {
	Name string
}

func (e *BadDefineLineError) Error() string {
	return fmt.Sprintf("second line should be '#define %s'", e.Name)
}
func (e *BadDefineLineError) Kind() Kind { return KindBadDefineLine }

// BadEndifLineError is returned when the last line is not "#endif /* NAME */".
type BadEndifLineError struct {
	Name string
}

func (e *BadEndifLineError) Error() string {
	return fmt.Sprintf("should end with '#endif /* %s */'", e.Name)
}
func (e *BadEndifLineError) Kind() Kind { return KindBadEndifLine }
