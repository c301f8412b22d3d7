package env

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/shirou/gopsutil/v4/process"
)

// probeTimeout bounds the process-table lookup used by the pcntl probe.
const probeTimeout = 2 * time.Second

// RealProvider implements Provider using the actual OS environment.
type RealProvider struct{}

// NewProvider creates a provider backed by the real OS environment.
func NewProvider() Provider {
	return &RealProvider{}
}

// Var returns the named environment variable.
func (p *RealProvider) Var(name string) (string, bool) {
	return os.LookupEnv(name)
}

// HasFeature probes the ambient environment for an optional feature.
// Unknown feature names report false.
func (p *RealProvider) HasFeature(name string) bool {
	switch name {
	case FeatureReadline:
		term, _ := p.Var("TERM")
		return isTerminal(os.Stdin) && term != "dumb"
	case FeaturePcntl:
		return hasSignalControl()
	case FeatureTTYStdin:
		return isTerminal(os.Stdin)
	case FeatureTTYStdout:
		return isTerminal(os.Stdout)
	default:
		return false
	}
}

// LookPath searches PATH for the named binary.
func (p *RealProvider) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Home returns the current user's home directory.
func (p *RealProvider) Home() (string, error) {
	return os.UserHomeDir()
}

// TempRoot returns the system temporary directory.
func (p *RealProvider) TempRoot() string {
	return os.TempDir()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// hasSignalControl reports whether the platform supports the process
// signaling the forking evaluation loop relies on. Windows has no POSIX
// signal delivery. On other platforms the current process must be visible
// in the process table; if the lookup fails the feature is treated as
// absent rather than an error.
func hasSignalControl() bool {
	if runtime.GOOS == "windows" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		return false
	}
	_, err = proc.PpidWithContext(ctx)
	return err == nil
}
