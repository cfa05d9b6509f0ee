package commands

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"nat/internal/config"
	"nat/internal/repo"
	"nat/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	repository, err := repo.New(lc.config.GetRepoPath(), config.SourceExt, lc.config.IgnoredDirs)
	if err != nil {
		return err
	}

	tests, err := repository.Enumerate()
	if err != nil {
		return err
	}
	tests = repo.FilterByName(tests, lc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}
	if lc.config.Flags.Sort {
		sort.Slice(tests, func(i, j int) bool {
			return tests[i].Identifier < tests[j].Identifier
		})
	}

	lc.formatter.PrintTestList(tests)
	return nil
}
