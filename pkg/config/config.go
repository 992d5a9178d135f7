package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Author is stamped into scaffolded README and manifest files.
type Author struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Config is the persistent mkdev configuration.
type Config struct {
	// Workspace is the root sorted repositories are filed under.
	// Empty means <home>/Projects.
	Workspace string `json:"workspace,omitempty"`

	Author Author `json:"author,omitempty"`

	// JSPackageManager is the preferred installer for Next.js
	// projects: npm, bun, pnpm or yarn.
	JSPackageManager string `json:"js_package_manager,omitempty"`

	// PythonEnv is the preferred environment manager for Python
	// projects: venv, poetry, conda or none.
	PythonEnv string `json:"python_env,omitempty"`
}

func GetConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(LocalConfigDir, LocalConfigFile)
	}
	return filepath.Join(homeDir, LocalConfigDir, LocalConfigFile)
}

func LoadConfig() (*Config, error) {
	configPath := GetConfigPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func (c *Config) SaveConfig() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, PermConfigFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WorkspaceRoot resolves the workspace directory, falling back to
// <home>/Projects when the config does not name one.
func (c *Config) WorkspaceRoot() string {
	if c.Workspace != "" {
		return c.Workspace
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultWorkspaceDir
	}
	return filepath.Join(homeDir, DefaultWorkspaceDir)
}

// PreferredJSPackageManager resolves the JS installer preference.
func (c *Config) PreferredJSPackageManager() string {
	if c.JSPackageManager != "" {
		return c.JSPackageManager
	}
	return DefaultJSPackageManager
}

// PreferredPythonEnv resolves the Python environment preference.
func (c *Config) PreferredPythonEnv() string {
	if c.PythonEnv != "" {
		return c.PythonEnv
	}
	return DefaultPythonEnv
}
