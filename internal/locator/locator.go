package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Sentinel errors so main can map each configuration failure to its own exit code.
var (
	// ErrNoToolchain means the toolchain root environment variable is unset.
	ErrNoToolchain = errors.New("toolchain root is not set")
	// ErrAgentNotFound means the agent directory contains no artifact.
	ErrAgentNotFound = errors.New("agent not found")
	// ErrAgentAmbiguous means the agent directory contains more than one file.
	ErrAgentAmbiguous = errors.New("ambiguous agent")
)

// Toolchain holds the resolved compiler and runtime executable paths
type Toolchain struct {
	Javac string
	Java  string
}

// FindToolchain resolves the compiler and runtime executables under the
// given installation root by fixed relative subpaths.
func FindToolchain(root string) (Toolchain, error) {
	if root == "" {
		return Toolchain{}, ErrNoToolchain
	}
	ext := ""
	if runtime.GOOS == "windows" {
		ext = ".exe"
	}
	return Toolchain{
		Javac: filepath.Join(root, "bin", "javac"+ext),
		Java:  filepath.Join(root, "bin", "java"+ext),
	}, nil
}

// FindAgent returns the path of the single agent artifact in dir.
// The harness refuses to guess: zero files is ErrAgentNotFound, more than
// one is ErrAgentAmbiguous. Subdirectories are not artifacts.
func FindAgent(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrAgentNotFound, dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	switch len(files) {
	case 0:
		return "", fmt.Errorf("%w: no artifact in %s", ErrAgentNotFound, dir)
	case 1:
		return files[0], nil
	default:
		return "", fmt.Errorf("%w: %d artifacts in %s", ErrAgentAmbiguous, len(files), dir)
	}
}
