package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []Finding
	}{
		{
			name:  "single line block comment inside braces",
			lines: []string{"int f(void) { /* x */ return 1; }"},
			want:  []Finding{{Line: 1, Kind: InlineBlockCommentInBody}},
		},
		{
			name: "multi line block comment inside body",
			lines: []string{
				"int f(void)",
				"{",
				"    /* explain",
				"     * at length */",
				"    return 1;",
				"}",
			},
		},
		{
			name:  "line comment at top level",
			lines: []string{"// note", "int x;"},
			want:  []Finding{{Line: 1, Kind: LineCommentOutsideBody}},
		},
		{
			name: "line comment inside body",
			lines: []string{
				"int f(void)",
				"{",
				"    // note",
				"    return 1;",
				"}",
			},
		},
		{
			name: "block comments outside bodies",
			lines: []string{
				"/* file header */",
				"",
				"/*",
				" * Multi line.",
				" */",
				"struct list {",
				"    int n; // count",
				"};",
			},
		},
		{
			name: "line comment after closing brace is top level",
			lines: []string{
				"void f(void)",
				"{",
				"} // end of f",
			},
			want: []Finding{{Line: 3, Kind: LineCommentOutsideBody}},
		},
		{
			name: "trailing line comment on opening brace line is in body",
			lines: []string{
				"void f(void) { // starts here",
				"}",
			},
		},
		{
			name: "several findings across the file",
			lines: []string{
				"// one",
				"void f(void)",
				"{",
				"    int a; /* two */",
				"    int b; /* three */ int c; /* four */",
				"}",
				"// five",
			},
			want: []Finding{
				{Line: 1, Kind: LineCommentOutsideBody},
				{Line: 4, Kind: InlineBlockCommentInBody},
				{Line: 5, Kind: InlineBlockCommentInBody},
				{Line: 5, Kind: InlineBlockCommentInBody},
				{Line: 7, Kind: LineCommentOutsideBody},
			},
		},
		{
			name: "block comment opened at top level and closed in body after a brace",
			lines: []string{
				"/* {",
				"   */",
			},
		},
		{
			name: "braces inside comments are counted",
			lines: []string{
				"/* { */",
				"// not reported, depth is one",
			},
			want: []Finding{{Line: 1, Kind: InlineBlockCommentInBody}},
		},
		{
			name: "string literals are not understood",
			lines: []string{
				`const char *url = "http://example.com";`,
			},
			want: []Finding{{Line: 1, Kind: LineCommentOutsideBody}},
		},
		{
			name: "initialiser braces count as bodies",
			lines: []string{
				"int table[] = { 1, /* two */ 2 };",
			},
			want: []Finding{{Line: 1, Kind: InlineBlockCommentInBody}},
		},
		{
			name: "line comment inside a block comment at top level",
			lines: []string{
				"/*",
				" * // not a line comment",
				" */",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, New(true).Scan(tt.lines)); diff != "" {
				t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanDisabled(t *testing.T) {
	t.Parallel()

	lines := []string{
		"// top",
		"int f(void) { /* x */ return 1; }",
	}
	assert.Empty(t, New(false).Scan(lines))
}

func TestScannerState(t *testing.T) {
	t.Parallel()

	sc := New(true)
	assert.Equal(t, NewState(), sc.State())

	findings := sc.Scan([]string{"void f(void)", "{", "    /* open", "    still open"})
	assert.Empty(t, findings)
	s := sc.State()
	assert.Equal(t, 1, s.BraceDepth)
	assert.True(t, s.InBlockComment)
	assert.Equal(t, 2, s.BlockCommentLines)
}

func TestFindingMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid /*...*/ style comment at line 4",
		Finding{Line: 4, Kind: InlineBlockCommentInBody}.Message())
	assert.Equal(t, "Invalid // style comment at line 12",
		Finding{Line: 12, Kind: LineCommentOutsideBody}.Message())
	assert.Empty(t, Finding{Line: 1, Kind: None}.Message())
}
