package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"nat/internal/compiler"
	"nat/internal/config"
	"nat/internal/domain"
	"nat/internal/locator"
	"nat/internal/repo"
	"nat/internal/runner"
)

// timestampLayout names run directories, one fresh directory per invocation
// so artifacts are never reused across runs.
const timestampLayout = "2006.01.02_15.04.05"

// Harness ties the repository, compiler and runner together
type Harness struct {
	cfg       *config.Config
	repo      *repo.Repository
	toolchain locator.Toolchain
	agentPath string
}

// New creates a Harness from explicit configuration and collaborators.
func New(cfg *config.Config, repository *repo.Repository, toolchain locator.Toolchain, agentPath string) *Harness {
	return &Harness{
		cfg:       cfg,
		repo:      repository,
		toolchain: toolchain,
		agentPath: agentPath,
	}
}

// Specs enumerates the repository and returns the explicit list of test
// specifications the reporting layer iterates over. With the sort flag set,
// specs are ordered by identifier; otherwise directory-listing order is kept.
func (h *Harness) Specs() ([]domain.Spec, error) {
	tests, err := h.repo.Enumerate()
	if err != nil {
		return nil, err
	}

	specs := make([]domain.Spec, 0, len(tests))
	for _, test := range tests {
		specs = append(specs, domain.Spec{
			Test:     test,
			CaseName: repo.CaseName(test.Identifier),
		})
	}
	if h.cfg.Flags.Sort {
		sort.Slice(specs, func(i, j int) bool {
			return specs[i].Test.Identifier < specs[j].Test.Identifier
		})
	}
	return specs, nil
}

// Run is one suite invocation: a fresh timestamped directory tree with
// compiled artifacts, ready to execute tests against.
type Run struct {
	Dir      string
	BuildDir string
	OutDir   string

	harness *Harness
	runner  *runner.Runner
}

// NewRun performs the one-time suite setup: computes the timestamped run
// directory, creates the build and capture directories, and bulk-compiles
// every source file. Any failure here aborts the whole suite before a
// single test executes.
func (h *Harness) NewRun() (*Run, error) {
	stamp := time.Now().Format(timestampLayout)
	dir := filepath.Join(h.cfg.RunRoot, stamp)
	buildDir := filepath.Join(dir, "build")
	outDir := filepath.Join(dir, "outs")

	for _, d := range []string{buildDir, outDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return nil, fmt.Errorf("create run dir: %w", err)
		}
	}

	sources, err := h.repo.AllSourceFiles()
	if err != nil {
		return nil, err
	}
	if err := compiler.New(h.toolchain.Javac).Compile(sources, buildDir); err != nil {
		return nil, err
	}

	return &Run{
		Dir:      dir,
		BuildDir: buildDir,
		OutDir:   outDir,
		harness:  h,
		runner:   runner.New(h.toolchain.Java, h.agentPath, buildDir, outDir, h.cfg.Timeout),
	}, nil
}
