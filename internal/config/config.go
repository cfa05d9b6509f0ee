package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Repository settings
	RepoPath string
	RunRoot  string
	AgentDir string

	// Toolchain settings
	ToolchainRoot string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Timeout time.Duration // 0 means no external-process timeout

	// Directories excluded from test enumeration
	IgnoredDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	RepoPath   string
	AgentDir   string
	NameFilter string
	Timeout    time.Duration
	Sort       bool
	DryRun     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		RepoPath:       DefaultRepoPath,
		RunRoot:        DefaultRunRoot,
		AgentDir:       DefaultAgentDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.IgnoredDirs = make([]string, len(DefaultIgnoredDirs))
	copy(cfg.IgnoredDirs, DefaultIgnoredDirs)
	return cfg
}

// Load creates a config, reads the environment and applies flags.
// A .env file in the working directory is honored if present.
func Load(flags Flags) *Config {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := New()
	cfg.Flags = flags
	cfg.ToolchainRoot = os.Getenv(ToolchainEnv)

	if dir := os.Getenv(AgentDirEnv); dir != "" {
		cfg.AgentDir = dir
	}
	if flags.RepoPath != "" {
		cfg.RepoPath = flags.RepoPath
	}
	if flags.AgentDir != "" {
		cfg.AgentDir = flags.AgentDir
	}
	if flags.Timeout > 0 {
		cfg.Timeout = flags.Timeout
	}
	return cfg
}

// GetRepoPath returns the test repository root as an absolute path when possible
func (c *Config) GetRepoPath() string {
	if abs, err := filepath.Abs(c.RepoPath); err == nil {
		return abs
	}
	return c.RepoPath
}

// GetOutputPath returns the full path to the run-results JSON file.
// Resolved to an absolute path so run and faills always read/write the same
// file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
