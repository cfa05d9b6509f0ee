package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nat/internal/cli"
	"nat/internal/cli/commands"
	"nat/internal/config"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "nat",
		Short:   "Golden-output test harness for the native agent",
		Long:    `A golden-output integration test harness for the native JVM instrumentation agent. Discovers Java test programs, compiles them, runs each one under the JVM with the agent attached and compares captured output against recorded baselines.`,
		Version: version,
	}
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Create initial config from environment and defaults
	var flags cli.Flags
	cfg := config.Load(flags.ToConfigFlags())

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command; the exit code distinguishes configuration
	// failures, setup failures and test failures.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
