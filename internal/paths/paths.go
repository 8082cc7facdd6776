// Package paths provides centralized path management for token-launcher.
package paths

import (
	"os"
	"path/filepath"
)

const ConfigFile = "config.toml"

const DefaultHomeDirName = ".token-launcher"

// HomeEnv overrides the home directory.
const HomeEnv = "TOKEN_LAUNCHER_HOME"

// DefaultHomeDir returns $TOKEN_LAUNCHER_HOME, else $HOME/.token-launcher, or
// falls back to the current directory.
func DefaultHomeDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultHomeDirName
	}
	return filepath.Join(home, DefaultHomeDirName)
}

// ConfigPath returns the config.toml path inside homeDir.
func ConfigPath(homeDir string) string {
	return filepath.Join(homeDir, ConfigFile)
}

// Exists returns true if path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates path and its parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
