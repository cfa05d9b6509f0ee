package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"nat/internal/domain"
)

// Runner executes a single test program under the runtime with the agent attached
type Runner struct {
	java      string
	agentPath string
	buildDir  string
	outputDir string
	timeout   time.Duration
}

// New creates a Runner. A zero timeout disables the external-process deadline.
func New(javaPath, agentPath, buildDir, outputDir string, timeout time.Duration) *Runner {
	return &Runner{
		java:      javaPath,
		agentPath: agentPath,
		buildDir:  buildDir,
		outputDir: outputDir,
		timeout:   timeout,
	}
}

// Run executes the runtime for one test and captures its stdout. The raw
// captured text is persisted to the output directory regardless of verdict,
// for post-hoc inspection. Errors are scoped to this test only.
func (r *Runner) Run(test domain.Test) (domain.TestResult, error) {
	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return domain.TestResult{}, fmt.Errorf("create output dir: %w", err)
	}

	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.java,
		"-agentpath:"+r.agentPath,
		"-classpath", r.buildDir,
		test.Identifier,
	)

	output, err := cmd.Output()
	if err != nil {
		var detail string
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail = string(exitErr.Stderr)
		}
		return domain.TestResult{}, fmt.Errorf("java %s: %w\n%s", test.Identifier, err, detail)
	}

	text := strings.ReplaceAll(string(output), "\r\n", "\n")

	outPath := filepath.Join(r.outputDir, test.Identifier+".out")
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return domain.TestResult{}, fmt.Errorf("write captured output: %w", err)
	}

	return domain.TestResult{Test: test, Output: text}, nil
}
