package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindToolchain(t *testing.T) {
	t.Run("resolves executables under the root", func(t *testing.T) {
		toolchain, err := FindToolchain("/opt/jdk")
		require.NoError(t, err)
		assert.Contains(t, toolchain.Javac, filepath.Join("bin", "javac"))
		assert.Contains(t, toolchain.Java, filepath.Join("bin", "java"))
	})

	t.Run("empty root is a configuration error", func(t *testing.T) {
		_, err := FindToolchain("")
		assert.ErrorIs(t, err, ErrNoToolchain)
	})
}

func TestFindAgent(t *testing.T) {
	t.Run("single artifact", func(t *testing.T) {
		dir := t.TempDir()
		artifact := filepath.Join(dir, "libagent.so")
		require.NoError(t, os.WriteFile(artifact, []byte("x"), 0644))

		path, err := FindAgent(dir)
		require.NoError(t, err)
		assert.Equal(t, artifact, path)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := FindAgent(t.TempDir())
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := FindAgent(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, ErrAgentNotFound)
	})

	t.Run("more than one artifact is ambiguous", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.so"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.so"), []byte("x"), 0644))

		_, err := FindAgent(dir)
		assert.ErrorIs(t, err, ErrAgentAmbiguous)
	})

	t.Run("subdirectories are not artifacts", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "CMakeFiles"), 0755))
		artifact := filepath.Join(dir, "libagent.so")
		require.NoError(t, os.WriteFile(artifact, []byte("x"), 0644))

		path, err := FindAgent(dir)
		require.NoError(t, err)
		assert.Equal(t, artifact, path)
	})
}
