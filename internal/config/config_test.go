package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(ToolchainEnv, "")
		t.Setenv(AgentDirEnv, "")

		cfg := Load(Flags{})
		if cfg.RepoPath != DefaultRepoPath {
			t.Errorf("expected %s, got %s", DefaultRepoPath, cfg.RepoPath)
		}
		if cfg.AgentDir != DefaultAgentDir {
			t.Errorf("expected %s, got %s", DefaultAgentDir, cfg.AgentDir)
		}
		if cfg.ToolchainRoot != "" {
			t.Errorf("expected empty toolchain root, got %s", cfg.ToolchainRoot)
		}
		if len(cfg.IgnoredDirs) != len(DefaultIgnoredDirs) {
			t.Errorf("expected %d ignored dirs, got %d", len(DefaultIgnoredDirs), len(cfg.IgnoredDirs))
		}
	})

	t.Run("environment provides toolchain root", func(t *testing.T) {
		t.Setenv(ToolchainEnv, "/opt/jdk")

		cfg := Load(Flags{})
		if cfg.ToolchainRoot != "/opt/jdk" {
			t.Errorf("expected /opt/jdk, got %s", cfg.ToolchainRoot)
		}
	})

	t.Run("environment overrides agent dir", func(t *testing.T) {
		t.Setenv(AgentDirEnv, "/build/agent")

		cfg := Load(Flags{})
		if cfg.AgentDir != "/build/agent" {
			t.Errorf("expected /build/agent, got %s", cfg.AgentDir)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv(AgentDirEnv, "/build/agent")

		cfg := Load(Flags{
			RepoPath: "my_tests",
			AgentDir: "/other/agent",
			Timeout:  30 * time.Second,
		})
		if cfg.RepoPath != "my_tests" {
			t.Errorf("expected my_tests, got %s", cfg.RepoPath)
		}
		if cfg.AgentDir != "/other/agent" {
			t.Errorf("expected /other/agent, got %s", cfg.AgentDir)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected 30s timeout, got %s", cfg.Timeout)
		}
	})
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()

	path := cfg.GetOutputPath()
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if filepath.Base(path) != DefaultOutputJSONFile {
		t.Errorf("expected file name %s, got %s", DefaultOutputJSONFile, filepath.Base(path))
	}
}
