package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// envConfigDir overrides the default base directory, mainly so tests
	// can isolate themselves from a real home directory.
	envConfigDir = "PSYSH_CONFIG_DIR"

	defaultDirName   = ".psysh"
	rcFileName       = "rc.lua"
	historyFileName  = "history"
	manualDBFileName = "manual.db"
	tempDirName      = "psysh"
)

// initConfigDir resolves the base directory and creates it, parents
// included. Every other default path hangs off the base directory, so
// failure here is fatal.
func (c *Config) initConfigDir() error {
	if c.configDir == "" {
		if dir, ok := c.env.Var(envConfigDir); ok && dir != "" {
			c.configDir = dir
		} else {
			home, err := c.env.Home()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}
			c.configDir = filepath.Join(home, defaultDirName)
		}
	}
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory %s: %w", c.configDir, err)
	}
	return nil
}

// ConfigDir returns the base directory for persistent shell state.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ConfigFile returns the rc script path: the override when set, otherwise
// rc.lua under the base directory.
func (c *Config) ConfigFile() string {
	if c.configFile != "" {
		return c.configFile
	}
	return filepath.Join(c.configDir, rcFileName)
}

// SetTempDir overrides the directory for ephemeral files and pipes.
func (c *Config) SetTempDir(dir string) {
	c.tempDir = dir
}

// TempDir returns the directory for ephemeral files and pipes. It is not
// created here; TempFile and PipeName create it on demand.
func (c *Config) TempDir() string {
	if c.tempDir != "" {
		return c.tempDir
	}
	return filepath.Join(c.env.TempRoot(), tempDirName)
}

// SetHistoryFile overrides the line editor history path.
func (c *Config) SetHistoryFile(path string) {
	c.historyFile = path
}

// HistoryFile returns the line editor history path.
func (c *Config) HistoryFile() string {
	if c.historyFile != "" {
		return c.historyFile
	}
	return filepath.Join(c.configDir, historyFileName)
}

// SetManualDBFile overrides the documentation database path.
func (c *Config) SetManualDBFile(path string) {
	c.manualDBFile = path
}

// ManualDBFile returns the documentation database path.
func (c *Config) ManualDBFile() string {
	if c.manualDBFile != "" {
		return c.manualDBFile
	}
	return filepath.Join(c.configDir, manualDBFileName)
}

// TempFile creates a uniquely named temp file <kind>_<pid>_<unique> under
// the temp directory, creating the directory first if needed, and returns
// its path.
func (c *Config) TempFile(kind string, pid int) (string, error) {
	dir, err := c.ensureTempDir()
	if err != nil {
		return "", err
	}
	f, err := os.CreateTemp(dir, fmt.Sprintf("%s_%d_*", kind, pid))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return name, nil
}

// PipeName returns the deterministic path <kind>_<pid> for a named pipe
// under the temp directory, creating the directory first if needed. The
// pipe itself is created by the caller.
func (c *Config) PipeName(kind string, pid int) (string, error) {
	dir, err := c.ensureTempDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%d", kind, pid)), nil
}

func (c *Config) ensureTempDir() (string, error) {
	dir := c.TempDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create temp directory %s: %w", dir, err)
	}
	return dir, nil
}
