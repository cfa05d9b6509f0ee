package commands

import (
	"github.com/spf13/cobra"

	"nat/internal/cli"
	"nat/internal/config"
	"nat/internal/storage"
	"nat/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run    *RunCommand
	List   *ListCommand
	Faills *FaillsCommand
	Prune  *PruneCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		Run:    NewRunCommand(cfg, jsonStorage, formatter),
		List:   NewListCommand(cfg, formatter),
		Faills: NewFaillsCommand(cfg, jsonStorage, errorViewer),
		Prune:  NewPruneCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		if flags.RepoPath != "" {
			cfg.RepoPath = flags.RepoPath
		}
		if flags.AgentDir != "" {
			cfg.AgentDir = flags.AgentDir
		}
		if flags.Timeout > 0 {
			cfg.Timeout = flags.Timeout
		}
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Compile and run all agent tests",
		Long:    "Discover test programs, bulk-compile them and run each one under the JVM with the native agent attached, comparing captured output against recorded baselines",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.RepoPath, "repo", "r", "", "Path to the test repository root (default test_data)")
	runCmd.Flags().StringVarP(&flags.AgentDir, "agent-dir", "a", "", "Directory containing the single agent artifact (default cmake-build-debug)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by identifier pattern (supports wildcards, e.g. 'size.*' or '*OneClass')")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Optional per-process timeout for the external runtime (0 = none)")
	runCmd.Flags().BoolVar(&flags.Sort, "sort", false, "Run tests in sorted identifier order instead of directory-listing order")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered agent tests",
		Long:    "Discover and list all test identifiers without executing them, marking the ones with no recorded baseline",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.RepoPath, "repo", "r", "", "Path to the test repository root (default test_data)")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by identifier pattern (supports wildcards)")
	listCmd.Flags().BoolVar(&flags.Sort, "sort", false, "List tests in sorted identifier order")
	rootCmd.AddCommand(listCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View baseline failures interactively",
		Long:  "Display the failures of the last run in an interactive viewer, baseline next to captured output",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)

	// Prune command
	pruneCmd := &cobra.Command{
		Use:     "prune",
		Short:   "Delete orphaned baseline files",
		Long:    "Remove recorded baselines whose identifier no longer maps to a source file; baselines are otherwise append-only",
		RunE:    c.Prune.Execute,
		PreRunE: applyFlags,
	}
	pruneCmd.Flags().StringVarP(&flags.RepoPath, "repo", "r", "", "Path to the test repository root (default test_data)")
	pruneCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Only print the baselines that would be removed")
	rootCmd.AddCommand(pruneCmd)
}
