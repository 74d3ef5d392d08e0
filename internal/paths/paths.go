// Package paths resolves configuration, data and log file locations.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDirName is the directory created under each XDG base directory.
const AppDirName = "moracle"

// File names inside the resolved directories.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "moracle.log"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "MORACLE_CONFIG_DIR"
	EnvDataDir   = "MORACLE_DATA_DIR"
)

// DefaultConfigDir returns the platform default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/moracle (fallback ~/.config/moracle)
// macOS:   ~/Library/Application Support/moracle
// Windows: %LOCALAPPDATA%/moracle
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultDataDir returns the platform default data directory, where the
// card database lives.
//
// Linux:   $XDG_DATA_HOME/moracle (fallback ~/.local/share/moracle)
// macOS:   ~/Library/Application Support/moracle
// Windows: %LOCALAPPDATA%/moracle
func DefaultDataDir() string {
	return filepath.Join(xdg.DataHome, AppDirName)
}

// DefaultLogFile returns the log file path under the XDG state directory.
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > MORACLE_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir(), nil
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > MORACLE_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir(), nil
}
