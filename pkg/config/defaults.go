package config

import "time"

// File Permissions
const (
	// PermDirectory is the file permission for created directories
	PermDirectory = 0755

	// PermSourceFile is the file permission for scaffolded files
	PermSourceFile = 0644

	// PermConfigFile is the file permission for config files
	PermConfigFile = 0644
)

// Path Constants
const (
	// LocalConfigDir is the base directory for mkdev configuration
	LocalConfigDir = ".mkdev"

	// LocalConfigFile is the filename for the main config
	LocalConfigFile = "config.json"

	// LocalStateDir is the directory name for the project registry
	LocalStateDir = "state"

	// StagingDirName is the folder clones land in before routing
	StagingDirName = ".mkdev-staging"

	// DefaultWorkspaceDir is the workspace folder used when the
	// config does not name one, resolved under the home directory
	DefaultWorkspaceDir = "Projects"
)

// Timeouts
const (
	// DefaultCloneTimeout bounds a single git clone invocation
	DefaultCloneTimeout = 10 * time.Minute

	// DefaultToolTimeout bounds scaffolding post-steps (go mod init,
	// npm install, poetry install, ...)
	DefaultToolTimeout = 5 * time.Minute
)

// Tool Defaults
const (
	// DefaultJSPackageManager is used when the config has no preference
	DefaultJSPackageManager = "npm"

	// DefaultPythonEnv is the environment manager for new Python projects
	DefaultPythonEnv = "venv"
)
