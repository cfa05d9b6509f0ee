package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nat/internal/cli"
	"nat/internal/config"
	"nat/internal/domain"
	"nat/internal/harness"
	"nat/internal/locator"
	"nat/internal/repo"
	"nat/internal/storage"
	"nat/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Configuration failures must abort before any test case exists,
	// each with its own exit code.
	toolchain, err := locator.FindToolchain(rc.config.ToolchainRoot)
	if err != nil {
		return cli.Exitf(cli.ExitNoToolchain, "%v: set %s", err, config.ToolchainEnv)
	}
	agentPath, err := locator.FindAgent(rc.config.AgentDir)
	if err != nil {
		code := cli.ExitAgentNotFound
		if errors.Is(err, locator.ErrAgentAmbiguous) {
			code = cli.ExitAgentAmbiguous
		}
		return &cli.ExitError{Code: code, Err: err}
	}

	repository, err := repo.New(rc.config.GetRepoPath(), config.SourceExt, rc.config.IgnoredDirs)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitSetupFailure, Err: err}
	}

	h := harness.New(rc.config, repository, toolchain, agentPath)

	specs, err := h.Specs()
	if err != nil {
		return &cli.ExitError{Code: cli.ExitSetupFailure, Err: err}
	}
	specs = filterSpecs(specs, rc.config.Flags.NameFilter)
	if len(specs) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	// One-time suite setup: fresh run directories plus the single bulk
	// compile. A compile failure invalidates every test case.
	run, err := h.NewRun()
	if err != nil {
		return cli.Exitf(cli.ExitSetupFailure, "suite setup failed: %v", err)
	}

	progressBar := ui.NewProgressBar(len(specs))
	startTime := time.Now()

	var verdicts []domain.Verdict
	var passed, failed int
	for _, spec := range specs {
		verdict := run.Execute(spec)
		verdicts = append(verdicts, verdict)
		if verdict.Failed() {
			failed++
		} else {
			passed++
		}
		progressBar.Update(passed, failed)
	}
	progressBar.Finish()
	duration := time.Since(startTime)

	fmt.Println()
	for _, verdict := range verdicts {
		if verdict.Failed() {
			rc.formatter.PrintVerdict(verdict)
		}
	}

	output := domain.Summarize(verdicts, duration, run.Dir)
	if err := rc.storage.SaveOutput(&output); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}
	rc.formatter.PrintSummary(&output)

	if failed > 0 {
		return &cli.ExitError{Code: cli.ExitTestFailures, Err: fmt.Errorf("%d test(s) failed", failed)}
	}
	return nil
}

func filterSpecs(specs []domain.Spec, pattern string) []domain.Spec {
	if pattern == "" {
		return specs
	}
	tests := make([]domain.Test, len(specs))
	for i, spec := range specs {
		tests[i] = spec.Test
	}
	kept := repo.FilterByName(tests, pattern)
	keep := make(map[string]bool, len(kept))
	for _, test := range kept {
		keep[test.Identifier] = true
	}

	var filtered []domain.Spec
	for _, spec := range specs {
		if keep[spec.Test.Identifier] {
			filtered = append(filtered, spec)
		}
	}
	return filtered
}
