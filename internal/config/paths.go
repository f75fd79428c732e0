// ABOUTME: Standard filesystem paths for present-go configuration
// ABOUTME: Resolves ~/.present-go/ for global and .present-go/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".present-go"

// GlobalDir returns the user-global config directory (~/.present-go/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// DefaultLogFile is where the demo logs when no log file is configured.
// Terminal UIs own stdout, so logs always go to a file.
func DefaultLogFile() string {
	return filepath.Join(GlobalDir(), "present-demo.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
