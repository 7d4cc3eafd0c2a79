// Package paths resolves the database file and config file locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dikkadev/proompt-dbtools/pkg/types"
)

// Default locations, relative to the working directory. The tools are run
// from the server directory, next to its data/ folder.
const (
	DefaultDatabasePath   = "./data/proompt.db"
	DefaultConfigFileName = "proompt-tools.yaml"
)

// Environment variable names for location overrides.
const (
	EnvDatabasePath = "PROOMPT_DB_PATH"
	EnvConfigFile   = "PROOMPT_TOOLS_CONFIG"
)

// ResolveDatabasePath returns the database path following the precedence
// chain: flag > configValue > PROOMPT_DB_PATH env > DefaultDatabasePath.
// The result is absolute.
func ResolveDatabasePath(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDatabasePath); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultDatabasePath)
}

// ResolveConfigFile returns the config file to read: flag > PROOMPT_TOOLS_CONFIG
// env > DefaultConfigFileName in the working directory. An empty result with a
// nil error means no config file is in use.
//
// An explicitly named file must exist; the default is optional.
func ResolveConfigFile(flag string) (string, error) {
	explicit := flag
	if explicit == "" {
		explicit = os.Getenv(EnvConfigFile)
	}
	if explicit != "" {
		path, err := filepath.Abs(explicit)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	path, err := filepath.Abs(DefaultConfigFileName)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", nil
	}
	return path, nil
}

// CheckDatabaseFile returns ErrDatabaseNotFound when path does not exist and
// ErrNotADatabaseFile when it names a directory. The check happens before any
// connection attempt, since opening a missing file would silently create it.
func CheckDatabaseFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrDatabaseNotFound, path)
		}
		return fmt.Errorf("stat database: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", types.ErrNotADatabaseFile, path)
	}
	return nil
}
