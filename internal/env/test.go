package env

import (
	"fmt"
	"os"
)

// TestProvider implements Provider with fixed values for deterministic
// tests. The zero value has no variables, no features, and no binaries.
type TestProvider struct {
	// Vars maps environment variable names to values.
	Vars map[string]string

	// Features maps feature names to availability.
	Features map[string]bool

	// Binaries maps binary names to resolved paths for LookPath.
	Binaries map[string]string

	// HomeDir is returned by Home. Empty means "no home directory".
	HomeDir string

	// Temp is returned by TempRoot. Empty falls back to os.TempDir.
	Temp string
}

// Var returns the named variable from the fixed map.
func (p *TestProvider) Var(name string) (string, bool) {
	v, ok := p.Vars[name]
	return v, ok
}

// HasFeature returns the fixed availability for the named feature.
func (p *TestProvider) HasFeature(name string) bool {
	return p.Features[name]
}

// LookPath resolves the named binary from the fixed map.
func (p *TestProvider) LookPath(file string) (string, error) {
	if path, ok := p.Binaries[file]; ok {
		return path, nil
	}
	return "", fmt.Errorf("executable file not found: %s", file)
}

// Home returns the fixed home directory.
func (p *TestProvider) Home() (string, error) {
	if p.HomeDir == "" {
		return "", fmt.Errorf("home directory not set")
	}
	return p.HomeDir, nil
}

// TempRoot returns the fixed temporary directory root.
func (p *TestProvider) TempRoot() string {
	if p.Temp == "" {
		return os.TempDir()
	}
	return p.Temp
}
