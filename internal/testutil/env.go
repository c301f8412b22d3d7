// Package testutil provides utilities for testing the shell in isolation.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/macomamio/psysh/internal/env"
)

// SetupTestEnv creates isolated per-test directories and redirects the
// shell's state paths into them, so tests never touch the user's real
// configuration, history, or manual database. Cleanup is handled by
// t.TempDir.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("PSYSH_CONFIG_DIR", filepath.Join(tmpDir, "config"))
	t.Setenv("HOME", tmpDir)
	return tmpDir
}

// NewTestProvider returns an environment provider with a home directory
// and temp root inside the per-test directory and nothing else: no
// variables, no features, no binaries. Tests enable exactly what they
// probe.
func NewTestProvider(t *testing.T) *env.TestProvider {
	t.Helper()

	tmpDir := t.TempDir()
	return &env.TestProvider{
		Vars:     map[string]string{},
		Features: map[string]bool{},
		Binaries: map[string]string{},
		HomeDir:  tmpDir,
		Temp:     filepath.Join(tmpDir, "tmp"),
	}
}
