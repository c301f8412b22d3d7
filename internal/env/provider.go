// Package env abstracts the ambient process environment behind an
// injectable provider.
//
// Every environment-dependent policy decision in the configuration layer
// (which line editor to construct, whether forking evaluation is possible,
// which pager to invoke) goes through a Provider. Production code binds
// RealProvider, which reads the actual OS environment; tests bind
// TestProvider, which serves fixed values, so fallback-chain decisions stay
// deterministic and never touch the real terminal or search path.
package env

// Feature names recognized by Provider.HasFeature.
const (
	// FeatureReadline reports whether interactive line editing is
	// available: stdin is a terminal and TERM is not "dumb".
	FeatureReadline = "readline"

	// FeaturePcntl reports whether process-control signaling is available
	// for the forking evaluation loop.
	FeaturePcntl = "pcntl"

	// FeatureTTYStdin reports whether stdin is attached to a terminal.
	FeatureTTYStdin = "tty-stdin"

	// FeatureTTYStdout reports whether stdout is attached to a terminal.
	FeatureTTYStdout = "tty-stdout"
)

// Provider supplies environment variables and capability probes.
type Provider interface {
	// Var returns the named environment variable and whether it is set.
	Var(name string) (string, bool)

	// HasFeature reports whether an optional runtime feature is available.
	// Absence of a feature is a normal false, never an error.
	HasFeature(name string) bool

	// LookPath searches the executable search path for the named binary
	// and returns its absolute path.
	LookPath(file string) (string, error)

	// Home returns the current user's home directory.
	Home() (string, error)

	// TempRoot returns the system temporary directory root.
	TempRoot() string
}
