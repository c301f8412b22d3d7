package config

import "fmt"

// ColorMode controls whether output is colorized.
type ColorMode int

const (
	// ColorAuto colorizes when stdout is a terminal.
	ColorAuto ColorMode = iota

	// ColorForced always colorizes.
	ColorForced

	// ColorDisabled never colorizes.
	ColorDisabled
)

// String returns the string representation of a ColorMode.
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorForced:
		return "forced"
	case ColorDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "auto", "forced" or "disabled".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "forced":
		return ColorForced, nil
	case "disabled":
		return ColorDisabled, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// InteractiveMode controls whether the shell behaves interactively.
type InteractiveMode int

const (
	// InteractiveAuto is interactive when stdin is a terminal.
	InteractiveAuto InteractiveMode = iota

	// InteractiveForced is always interactive.
	InteractiveForced

	// InteractiveDisabled is never interactive.
	InteractiveDisabled
)

// String returns the string representation of an InteractiveMode.
func (m InteractiveMode) String() string {
	switch m {
	case InteractiveAuto:
		return "auto"
	case InteractiveForced:
		return "forced"
	case InteractiveDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParseInteractiveMode parses "auto", "forced" or "disabled".
func ParseInteractiveMode(s string) (InteractiveMode, error) {
	switch s {
	case "auto":
		return InteractiveAuto, nil
	case "forced":
		return InteractiveForced, nil
	case "disabled":
		return InteractiveDisabled, nil
	default:
		return InteractiveAuto, fmt.Errorf("unknown interactive mode %q", s)
	}
}

// Verbosity controls how chatty the shell is.
type Verbosity int

const (
	// VerbosityQuiet suppresses all non-essential output.
	VerbosityQuiet Verbosity = iota

	// VerbosityNormal is the default level.
	VerbosityNormal

	// VerbosityVerbose adds progress detail.
	VerbosityVerbose

	// VerbosityDebug adds internal diagnostics.
	VerbosityDebug
)

// String returns the string representation of a Verbosity.
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseVerbosity parses "quiet", "normal", "verbose" or "debug".
func ParseVerbosity(s string) (Verbosity, error) {
	switch s {
	case "quiet":
		return VerbosityQuiet, nil
	case "normal":
		return VerbosityNormal, nil
	case "verbose":
		return VerbosityVerbose, nil
	case "debug":
		return VerbosityDebug, nil
	default:
		return VerbosityNormal, fmt.Errorf("unknown verbosity %q", s)
	}
}
