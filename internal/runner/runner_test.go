package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nat/internal/domain"
)

// writeStub creates an executable shell script standing in for java.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not available on windows")
	}
	path := filepath.Join(t.TempDir(), "java")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestRunner_Run(t *testing.T) {
	test := domain.Test{Identifier: "pkg.Foo"}

	t.Run("captures stdout and persists it", func(t *testing.T) {
		stub := writeStub(t, "echo hello\n")
		outDir := filepath.Join(t.TempDir(), "outs")

		r := New(stub, "/agent/libagent.so", "/tmp/build", outDir, 0)
		result, err := r.Run(test)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", result.Output)
		assert.Equal(t, test, result.Test)

		data, err := os.ReadFile(filepath.Join(outDir, "pkg.Foo.out"))
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(data))
	})

	t.Run("passes agent, classpath and entry point", func(t *testing.T) {
		argsFile := filepath.Join(t.TempDir(), "args")
		stub := writeStub(t, `echo "$@" > `+argsFile+"\n")

		r := New(stub, "/agent/libagent.so", "/tmp/build", t.TempDir(), 0)
		_, err := r.Run(test)
		require.NoError(t, err)

		data, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		args := strings.TrimSpace(string(data))
		assert.Equal(t, "-agentpath:/agent/libagent.so -classpath /tmp/build pkg.Foo", args)
	})

	t.Run("normalizes CRLF line endings", func(t *testing.T) {
		stub := writeStub(t, "printf 'line1\\r\\nline2\\r\\n'\n")

		r := New(stub, "/agent/a.so", "/tmp/build", t.TempDir(), 0)
		result, err := r.Run(test)
		require.NoError(t, err)
		assert.Equal(t, "line1\nline2\n", result.Output)
	})

	t.Run("non-zero exit fails this test with stderr diagnostics", func(t *testing.T) {
		stub := writeStub(t, "echo 'Exception in thread main' >&2\nexit 1\n")

		r := New(stub, "/agent/a.so", "/tmp/build", t.TempDir(), 0)
		_, err := r.Run(test)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Exception in thread main")
	})

	t.Run("launch failure surfaces as an error", func(t *testing.T) {
		r := New("/non/existent/java", "/agent/a.so", "/tmp/build", t.TempDir(), 0)
		_, err := r.Run(test)
		assert.Error(t, err)
	})

	t.Run("timeout kills a hung process", func(t *testing.T) {
		stub := writeStub(t, "sleep 10\n")

		r := New(stub, "/agent/a.so", "/tmp/build", t.TempDir(), 100*time.Millisecond)
		start := time.Now()
		_, err := r.Run(test)
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
