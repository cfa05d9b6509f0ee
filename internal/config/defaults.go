package config

const (
	// DefaultRepoPath is the default test repository root
	DefaultRepoPath = "test_data"
	// DefaultRunRoot is the directory timestamped run directories are created under
	DefaultRunRoot = "test_outs"
	// DefaultAgentDir is the directory expected to hold the single agent artifact
	DefaultAgentDir = "cmake-build-debug"
	// DefaultOutputJSONFile is the default run-results file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default run-results directory
	DefaultOutputJSONDir = "storage"
	// SourceExt is the source file extension stripped when deriving identifiers
	SourceExt = ".java"
	// ToolchainEnv names the environment variable holding the JDK installation root
	ToolchainEnv = "JAVA_HOME"
	// AgentDirEnv optionally overrides the agent artifact directory
	AgentDirEnv = "NAT_AGENT_DIR"
)

// DefaultIgnoredDirs are source directories that hold shared fixture code;
// they are excluded from test enumeration but still compiled.
var DefaultIgnoredDirs = []string{"common", "memory"}
