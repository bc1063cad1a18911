package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/andyballingall/cstylecheck/internal/config"
	"github.com/andyballingall/cstylecheck/internal/fs"
)

func TestRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeSource(t, dir, "a.h", badGuardHeader)
	b := writeSource(t, dir, "b.c", badCommentSource)
	c := writeSource(t, dir, "c.c", cleanSource)
	h := writeSource(t, dir, "list.h", cleanHeader)

	t.Run("run help", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", "--help"}, &stdout, io.Discard, fs.MapEnvProvider{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "cstylecheck checks C source and header files")
	})

	t.Run("no files prints usage", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck"}, &stdout, &stderr, fs.MapEnvProvider{})
		require.Error(t, err)
		assert.Equal(t, ExitUsage, ExitCode(err))
		assert.True(t, strings.HasPrefix(stdout.String(), "Usage:"), stdout.String())
		assert.Contains(t, stdout.String(), "cstylecheck [flags] FILE...")
		assert.Equal(t, "Error: no files to check\n", stderr.String())
	})

	t.Run("clean files", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", c, h}, &stdout, &stderr, fs.MapEnvProvider{})
		require.NoError(t, err)
		assert.Equal(t, ExitOK, ExitCode(err))
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("violations are reported on stdout", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", a, b, c}, &stdout, &stderr, fs.MapEnvProvider{})
		require.ErrorIs(t, err, ErrViolations)
		assert.Equal(t, ExitViolations, ExitCode(err))
		assert.Equal(t,
			a+": bad include guard name 'list_h'\n"+
				b+": Invalid // style comment at line 1\n"+
				b+": Invalid /*...*/ style comment at line 4\n",
			stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("verbose summary", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", "-v", b, c}, &stdout, io.Discard, fs.MapEnvProvider{})
		require.ErrorIs(t, err, ErrViolations)
		assert.Contains(t, stdout.String(), c+": ok\n")
		assert.Contains(t, stdout.String(), "Checked 2 files: 1 passed, 1 failed (2 violations)\n")
	})

	t.Run("unreadable file fails but does not stop the run", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(dir, "missing.c")
		var stdout bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", missing, b}, &stdout, io.Discard, fs.MapEnvProvider{})
		require.ErrorIs(t, err, ErrViolations)
		assert.Contains(t, stdout.String(), missing+": cannot read file")
		assert.Contains(t, stdout.String(), b+": Invalid // style comment at line 1")
	})

	t.Run("environment disables a check", func(t *testing.T) {
		t.Parallel()
		env := fs.MapEnvProvider{config.EnvCheckComments: "false"}
		err := Run(context.Background(), []string{"cstylecheck", b}, io.Discard, io.Discard, env)
		require.NoError(t, err)
	})

	t.Run("missing explicit config", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", "--config", filepath.Join(dir, "nope.yml"), c},
			io.Discard, &stderr, fs.MapEnvProvider{})
		var cfgErr *config.MissingConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ExitViolations, ExitCode(err))
		assert.Contains(t, stderr.String(), "Error: config file not found")
	})

	t.Run("run with debug flag writes a log file", func(t *testing.T) {
		t.Parallel()
		logPath := filepath.Join(t.TempDir(), "cstylecheck.log")
		env := fs.MapEnvProvider{LogEnvVar: logPath}

		var stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", "--debug", b, c}, io.Discard, &stderr, env)
		require.ErrorIs(t, err, ErrViolations)
		assert.Contains(t, stderr.String(), "checked file "+c)

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)

		var checked []string
		gjson.ForEachLine(string(data), func(line gjson.Result) bool {
			if line.Get("msg").String() == "checked file" {
				assert.Equal(t, "DEBUG", line.Get("level").String())
				checked = append(checked, line.Get("path").String())
			}
			return true
		})
		assert.Equal(t, []string{b, c}, checked)
	})

	t.Run("run setupLogger error", func(t *testing.T) {
		t.Parallel()
		// A directory cannot be opened as a log file
		env := fs.MapEnvProvider{LogEnvVar: t.TempDir()}

		var stderr bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", c}, io.Discard, &stderr, env)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Warning: logging to file disabled")
	})

	t.Run("run with nil env", func(t *testing.T) {
		t.Parallel()
		var stdout bytes.Buffer
		err := Run(context.Background(), []string{"cstylecheck", "--help"}, &stdout, io.Discard, nil)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "pre-commit hook")
	})

	t.Run("run interrupted by user", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())

		var stderr safeBuffer
		done := make(chan error, 1)
		go func() {
			done <- Run(ctx, []string{"cstylecheck", "--watch", c}, io.Discard, &stderr, fs.MapEnvProvider{})
		}()

		// Wait a bit for it to start watching
		require.True(t, stderr.waitForOutput(2*time.Second), "watcher did not start")
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Run did not return after cancel")
		}
		assert.Contains(t, stderr.String(), "Watching for changes")
	})
}
