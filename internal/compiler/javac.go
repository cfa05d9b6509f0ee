package compiler

import (
	"fmt"
	"os/exec"
)

// Javac invokes the external compiler over the full source set
type Javac struct {
	javac string
}

// New creates a Javac adapter for the given compiler executable
func New(javacPath string) *Javac {
	return &Javac{javac: javacPath}
}

// Compile runs a single bulk compilation of sources into buildDir.
// Any failure invalidates every test case, so the error aborts the suite.
func (c *Javac) Compile(sources []string, buildDir string) error {
	if len(sources) == 0 {
		return fmt.Errorf("no source files to compile")
	}

	args := append([]string{"-d", buildDir}, sources...)
	cmd := exec.Command(c.javac, args...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("javac failed: %w\n%s", err, output)
	}
	return nil
}
