package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/andyballingall/cstylecheck/internal/check"
)

const (
	cleanHeader = `/* Singly linked list. */
#ifndef LIST_H
#define LIST_H

struct list {
    struct list *next; // next node
};

#endif /* LIST_H */`

	badGuardHeader = `#ifndef list_h
#define list_h
#endif /* list_h */`

	badCommentSource = `// top level line comment
int main(void)
{
    return 0; /* inline block comment */
}`

	cleanSource = `/* Entry point. */
int main(void)
{
    // nothing to do
    return 0;
}`
)

type MockManager struct {
	mock.Mock
}

func (m *MockManager) CheckFiles(ctx context.Context, paths []string) (*check.Summary, error) {
	args := m.Called(ctx, paths)
	s, _ := args.Get(0).(*check.Summary)
	return s, args.Error(1)
}

func (m *MockManager) WatchFiles(ctx context.Context, paths []string, readyChan chan<- struct{}) error {
	args := m.Called(ctx, paths, readyChan)
	return args.Error(0)
}

func (m *MockManager) StagedFiles() ([]string, error) {
	args := m.Called()
	files, _ := args.Get(0).([]string)
	return files, args.Error(1)
}

// MockGitter is a test mock for the repo.Gitter interface.
type MockGitter struct {
	StagedFilesFunc func(exts []string) ([]string, error)
}

func (m *MockGitter) StagedFiles(exts []string) ([]string, error) {
	if m.StagedFilesFunc != nil {
		return m.StagedFilesFunc(exts)
	}
	return nil, nil
}

// safeBuffer is a thread-safe wrapper around bytes.Buffer for use in concurrent tests.
type safeBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (s *safeBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *safeBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

// waitForOutput polls the buffer until it contains output or timeout is reached.
// Returns true if output was found, false if timeout occurred.
func (s *safeBuffer) waitForOutput(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.String() != "" {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

// writeSource writes content to name inside dir and returns the full path.
func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
