package check

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const canonicalHeader = `/*
 * list.h - intrusive lists
 */
#ifndef LIST_H
#define LIST_H

struct list {
    struct list *next; // forward link
};

#endif /* LIST_H */
`

const badGuardHeader = `#ifndef list_h
#define list_h
#endif /* list_h */
`

const badCommentSource = `// file comment in the wrong style
int f(void)
{
    return 1; /* inline */
}
`

const cleanSource = `/* cleanly commented */
int f(void)
{
    // fine in a body
    return 1;
}
`

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// recordingReporter captures what a Runner reports.
type recordingReporter struct {
	mu        sync.Mutex
	files     []*FileResult
	summaries []*Summary
	failWith  error
}

func (r *recordingReporter) WriteFile(w io.Writer, res *FileResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.files = append(r.files, res)
	for _, v := range res.Violations {
		fmt.Fprintln(w, v.String())
	}
	return nil
}

func (r *recordingReporter) WriteSummary(w io.Writer, s *Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summaries = append(r.summaries, s)
	fmt.Fprintf(w, "files=%d failed=%s\n", s.Files, strings.Join(s.Failed, ","))
	return nil
}

func (r *recordingReporter) paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.files))
	for _, f := range r.files {
		out = append(out, f.Path)
	}
	return out
}
