package scan

import (
	"fmt"
)

// Finding is a violation located on a 1-based line.
type Finding struct {
	Line int
	Kind Kind
}

// Message renders the diagnostic for the finding.
func (f Finding) Message() string {
	switch f.Kind {
	case InlineBlockCommentInBody:
		return fmt.Sprintf("Invalid /*...*/ style comment at line %d", f.Line)
	case LineCommentOutsideBody:
		return fmt.Sprintf("Invalid // style comment at line %d", f.Line)
	default:
		return ""
	}
}

// Scanner runs State over whole files. A Scanner is used for one file at a time.
type Scanner struct {
	checkComments bool
	state         *State
}

// New creates a Scanner. With checkComments false only braces are tracked and no
// findings are produced.
func New(checkComments bool) *Scanner {
	return &Scanner{checkComments: checkComments}
}

// Scan walks every character of lines in order and returns all findings. It never
// stops early; a line may produce several findings.
func (sc *Scanner) Scan(lines []string) []Finding {
	s := NewState()
	sc.state = s
	var findings []Finding

	for i, line := range lines {
		s.StartLine()
		for _, c := range line {
			if k := s.Step(c, sc.checkComments); k != None {
				findings = append(findings, Finding{Line: i + 1, Kind: k})
			}
		}
		s.EndLine()
	}

	return findings
}

// State returns the state left by the last Scan, or a fresh State if Scan has not
// run.
func (sc *Scanner) State() *State {
	if sc.state == nil {
		return NewState()
	}
	return sc.state
}
