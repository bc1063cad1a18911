// Package scan implements the brace depth and comment placement scanner.
//
// Block comments (/*...*/) belong outside function and struct bodies, where the
// brace depth is zero. Inside a body they are tolerated only when they span more
// than one line. Line comments (//) belong inside bodies.
//
// The scanner works on raw characters. It does not know about string or character
// literals, so a comment delimiter inside a literal is treated as a real one, and
// every brace counts towards the depth, including those of initialiser lists.
package scan

// Kind identifies a comment placement violation.
type Kind int

const (
	// None means the character did not complete a violation.
	None Kind = iota
	// InlineBlockCommentInBody is a /*...*/ comment closed on the line it was opened
	// on, inside a body.
	InlineBlockCommentInBody
	// LineCommentOutsideBody is a // comment at brace depth zero.
	LineCommentOutsideBody
)

func (k Kind) String() string {
	switch k {
	case InlineBlockCommentInBody:
		return "InlineBlockCommentInBody"
	case LineCommentOutsideBody:
		return "LineCommentOutsideBody"
	default:
		return "None"
	}
}

// noPrev marks the start of a line, where no character precedes the current one.
const noPrev rune = -1

// State is the scanner's per-file state machine.
//
// The zero value is not ready for use; call NewState.
type State struct {
	// BraceDepth is the number of unmatched '{' seen so far. It can go negative on
	// unbalanced input.
	BraceDepth int
	// InBlockComment is true from the character after "/*" up to the '/' of "*/".
	InBlockComment bool
	// BlockCommentLines counts the line ends crossed by the current block comment.
	// It is zero whenever a line ends outside a block comment.
	BlockCommentLines int

	prev rune
}

// NewState returns the state at the start of a file.
func NewState() *State {
	return &State{prev: noPrev}
}

// StartLine forgets the previous character. Two-character delimiters never span
// a line break.
func (s *State) StartLine() {
	s.prev = noPrev
}

// Step feeds one character to the state machine and reports the violation, if any,
// completed by it.
//
// Braces always adjust the depth. When checkComments is false the comment
// transitions are skipped entirely, so InBlockComment never becomes true.
//
// Transitions, in priority order:
//
//	'{'                          depth++
//	'}'                          depth--
//	prev '*', c '/'              leave block comment; InlineBlockCommentInBody
//	                             if depth > 0 and BlockCommentLines < 1
//	prev '/', c '*'              enter block comment
//	prev '/', c '/'              LineCommentOutsideBody if not in a block
//	                             comment and depth == 0
func (s *State) Step(c rune, checkComments bool) Kind {
	found := None

	switch {
	case c == '{':
		s.BraceDepth++
	case c == '}':
		s.BraceDepth--
	case checkComments && s.prev == '*' && c == '/':
		s.InBlockComment = false
		if s.BraceDepth > 0 && s.BlockCommentLines < 1 {
			found = InlineBlockCommentInBody
		}
	case checkComments && s.prev == '/':
		switch {
		case c == '*':
			s.InBlockComment = true
		case c == '/' && !s.InBlockComment && s.BraceDepth == 0:
			found = LineCommentOutsideBody
		}
	}

	s.prev = c
	return found
}

// EndLine records a line break: a block comment still open grows by one line,
// otherwise the counter resets.
func (s *State) EndLine() {
	if s.InBlockComment {
		s.BlockCommentLines++
	} else {
		s.BlockCommentLines = 0
	}
}
