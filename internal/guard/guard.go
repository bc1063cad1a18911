// Package guard validates the include guard of C and C++ header files.
//
// A canonical guard looks like:
//
//	#ifndef LIST_H
//	#define LIST_H
//	...
//	#endif /* LIST_H */
//
// and may be preceded by a block comment documenting the file.
package guard

import (
	"strings"
	"unicode"

	"github.com/andyballingall/cstylecheck/internal/fs"
)

// HeaderExtensions lists the file extensions that carry include guards.
var HeaderExtensions = []string{".h", ".hpp"}

const (
	blockOpen  = "/*"
	blockClose = "*/"
	ifndef     = "#ifndef"
	define     = "#define"
	endif      = "#endif"
)

// minLines is the smallest file that can hold #ifndef, #define and #endif.
const minLines = 3

// IsHeader reports whether the include guard check applies to path.
func IsHeader(path string) bool {
	return fs.HasExt(path, HeaderExtensions...)
}

// Candidate is the part of a header the guard is read from. Each line has been
// split on single spaces; runs of spaces or tabs are not normalised.
type Candidate struct {
	Ifndef []string
	Define []string
	Endif  []string
}

// NewCandidate locates the guard lines, skipping a leading block comment.
func NewCandidate(lines []string) (*Candidate, error) {
	if len(lines) < minLines {
		return nil, &MissingGuardError{}
	}

	first := 0
	if strings.Contains(lines[0], blockOpen) {
		end := -1
		for i, l := range lines {
			if strings.Contains(l, blockClose) {
				end = i
				break
			}
		}
		if end < 0 {
			return nil, &MalformedLeadingCommentError{}
		}
		first = end + 1
	}

	if first+1 >= len(lines) {
		return nil, &MissingGuardError{}
	}

	return &Candidate{
		Ifndef: tokens(lines[first]),
		Define: tokens(lines[first+1]),
		Endif:  tokens(lines[len(lines)-1]),
	}, nil
}

// Validate checks the candidate against the canonical guard shape and returns the
// first rule it breaks.
func (c *Candidate) Validate() error {
	if len(c.Ifndef) != 2 || c.Ifndef[0] != ifndef {
		return &MissingIfndefError{}
	}

	name := c.Ifndef[1]
	if !ValidName(name) {
		return &BadGuardNameError{Name: name}
	}

	if len(c.Define) != 2 || c.Define[0] != define || c.Define[1] != name {
		return &BadDefineLineError{Name: name}
	}

	if len(c.Endif) != 4 || c.Endif[0] != endif || c.Endif[1] != blockOpen ||
		c.Endif[2] != name || c.Endif[3] != blockClose {
		return &BadEndifLineError{Name: name}
	}

	return nil
}

// Validate checks the include guard of a header given its lines.
func Validate(lines []string) error {
	c, err := NewCandidate(lines)
	if err != nil {
		return err
	}
	return c.Validate()
}

// ValidName reports whether name is an acceptable guard macro: no lowercase
// letters, ending in _H or _HPP.
func ValidName(name string) bool {
	if strings.IndexFunc(name, unicode.IsLower) >= 0 {
		return false
	}
	return strings.HasSuffix(name, "_H") || strings.HasSuffix(name, "_HPP")
}

func tokens(line string) []string {
	return strings.Split(line, " ")
}
