package cli

import (
	"time"

	"nat/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	RepoPath   string
	AgentDir   string
	NameFilter string
	Timeout    time.Duration
	Sort       bool
	DryRun     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		RepoPath:   f.RepoPath,
		AgentDir:   f.AgentDir,
		NameFilter: f.NameFilter,
		Timeout:    f.Timeout,
		Sort:       f.Sort,
		DryRun:     f.DryRun,
	}
}
