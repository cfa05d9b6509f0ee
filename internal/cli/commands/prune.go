package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nat/internal/config"
	"nat/internal/repo"
)

// PruneCommand handles the prune command
type PruneCommand struct {
	config *config.Config
}

// NewPruneCommand creates a new PruneCommand
func NewPruneCommand(cfg *config.Config) *PruneCommand {
	return &PruneCommand{config: cfg}
}

// Execute removes baseline files whose identifier no longer has a source
// file. Baselines are append-only during runs, so this is the only place
// they are ever deleted.
func (pc *PruneCommand) Execute(cmd *cobra.Command, args []string) error {
	repository, err := repo.New(pc.config.GetRepoPath(), config.SourceExt, pc.config.IgnoredDirs)
	if err != nil {
		return err
	}

	tests, err := repository.Enumerate()
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(tests))
	for _, test := range tests {
		known[test.Identifier] = true
	}

	baselines, err := repository.ListBaselines()
	if err != nil {
		return err
	}

	var orphaned []string
	for _, identifier := range baselines {
		if !known[identifier] {
			orphaned = append(orphaned, identifier)
		}
	}

	if len(orphaned) == 0 {
		color.Green("✓ No orphaned baselines")
		return nil
	}

	for _, identifier := range orphaned {
		if pc.config.Flags.DryRun {
			color.Yellow("would remove %s", identifier)
			continue
		}
		if err := repository.RemoveBaseline(identifier); err != nil {
			return err
		}
		color.Yellow("removed %s", identifier)
	}
	return nil
}
