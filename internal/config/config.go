// Package config is the configuration and service-resolution layer of the
// shell.
//
// A Config owns every environment-dependent policy decision: which line
// editor to construct, whether evaluation may fork, which pager to invoke,
// and where persistent state lives. Services are resolved lazily on first
// access through ordered fallback chains; explicit setters always win over
// lazy construction, and lazy construction is idempotent.
//
// Configs may be mutated by an rc script written in Lua. The script runs
// with full privilege over the configuration; loading one is equivalent to
// running trusted code. See LoadFile.
package config

import (
	"os"

	"github.com/macomamio/psysh/internal/cleaner"
	"github.com/macomamio/psysh/internal/command"
	"github.com/macomamio/psysh/internal/env"
	"github.com/macomamio/psysh/internal/loop"
	"github.com/macomamio/psysh/internal/manual"
	"github.com/macomamio/psysh/internal/output"
	"github.com/macomamio/psysh/internal/present"
	"github.com/macomamio/psysh/internal/readline"
)

const (
	defaultPrompt      = ">>> "
	defaultHistorySize = 0 // unlimited
)

// Config is the aggregate root of the configuration layer. It is owned by
// a single shell session and is not safe for concurrent use.
type Config struct {
	env    env.Provider
	logger Logger

	// Path overrides. Empty means "derive the default".
	configDir    string
	configFile   string
	tempDir      string
	historyFile  string
	manualDBFile string

	// Capability flags, probed once at construction.
	hasReadline bool
	hasPcntl    bool

	// Usage flags. Nil means unset: use the capability if available.
	useReadline *bool
	usePcntl    *bool

	// Scalar options.
	defaultIncludes   []string
	prompt            string
	startupMessage    string
	colorMode         ColorMode
	interactiveMode   InteractiveMode
	verbosity         Verbosity
	historySize       int
	eraseDuplicates   bool
	requireSemicolons bool
	errorLoggingLevel string

	// Service slots. Nil means unbound; the getter resolves and memoizes.
	readlineSlot readline.Readline
	backends     []readline.Backend
	cleanerSlot  *cleaner.Cleaner
	outputSlot   *output.Output
	pagerSlot    output.Pager
	pagerDone    bool
	loopSlot     loop.Loop
	manualSlot   *manual.DB
	manualDone   bool
	presentSlot  *present.Manager

	// Deferred command registration.
	shell   command.Shell
	pending []command.Command

	// scriptErr preserves the typed error when a setter fails inside an
	// rc script; the raised Lua error only carries its string form.
	scriptErr error
}

// New creates a Config from an option map, using the real OS environment.
//
// Two keys are consumed before any other processing: "configDir" overrides
// the base directory and "configFile" overrides the rc script path. The
// base directory is created immediately; failure to create it is fatal.
// Remaining options go through ApplyOptions, capabilities are probed, and
// the rc script is loaded if it exists.
func New(opts map[string]any) (*Config, error) {
	return NewWithProvider(env.NewProvider(), opts)
}

// NewWithProvider creates a Config bound to the given environment
// provider. Tests use this with env.TestProvider to keep every fallback
// decision deterministic.
func NewWithProvider(p env.Provider, opts map[string]any) (*Config, error) {
	c := &Config{
		env:             p,
		logger:          defaultLogger(),
		prompt:          defaultPrompt,
		verbosity:       VerbosityNormal,
		historySize:     defaultHistorySize,
		eraseDuplicates: true,
	}

	rest := make(map[string]any, len(opts))
	for k, v := range opts {
		rest[k] = v
	}
	if v, ok := rest[optConfigDir]; ok {
		dir, err := asString(optConfigDir, v)
		if err != nil {
			return nil, err
		}
		c.configDir = dir
		delete(rest, optConfigDir)
	}
	if v, ok := rest[optConfigFile]; ok {
		file, err := asString(optConfigFile, v)
		if err != nil {
			return nil, err
		}
		c.configFile = file
		delete(rest, optConfigFile)
	}

	if err := c.initConfigDir(); err != nil {
		return nil, err
	}

	if err := c.ApplyOptions(rest); err != nil {
		return nil, err
	}

	c.hasReadline = p.HasFeature(env.FeatureReadline)
	c.hasPcntl = p.HasFeature(env.FeaturePcntl)

	if file := c.ConfigFile(); fileExists(file) {
		if err := c.LoadFile(file); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// SetLogger replaces the configuration logger. A nil logger restores the
// default no-op logger.
func (c *Config) SetLogger(l Logger) {
	if l == nil {
		l = defaultLogger()
	}
	c.logger = l
}

// HasReadline reports whether interactive line editing is physically
// available in this environment.
func (c *Config) HasReadline() bool {
	return c.hasReadline
}

// HasPcntl reports whether process-control signaling is physically
// available in this environment.
func (c *Config) HasPcntl() bool {
	return c.hasPcntl
}

// SetUseReadline sets the line editing usage policy.
func (c *Config) SetUseReadline(use bool) {
	c.useReadline = &use
}

// UseReadline returns the effective line editing policy: the usage flag
// when explicitly set (still gated by availability), otherwise
// availability itself.
func (c *Config) UseReadline() bool {
	if c.useReadline != nil {
		return *c.useReadline && c.hasReadline
	}
	return c.hasReadline
}

// SetUsePcntl sets the process-control usage policy.
func (c *Config) SetUsePcntl(use bool) {
	c.usePcntl = &use
}

// UsePcntl returns the effective process-control policy.
func (c *Config) UsePcntl() bool {
	if c.usePcntl != nil {
		return *c.usePcntl && c.hasPcntl
	}
	return c.hasPcntl
}

// SetDefaultIncludes sets the scripts evaluated at shell startup.
func (c *Config) SetDefaultIncludes(includes []string) {
	c.defaultIncludes = includes
}

// DefaultIncludes returns the scripts evaluated at shell startup.
func (c *Config) DefaultIncludes() []string {
	return c.defaultIncludes
}

// SetPrompt sets the input prompt.
func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Prompt returns the input prompt.
func (c *Config) Prompt() string {
	return c.prompt
}

// SetStartupMessage sets the message printed when the shell starts.
func (c *Config) SetStartupMessage(msg string) {
	c.startupMessage = msg
}

// StartupMessage returns the message printed when the shell starts.
func (c *Config) StartupMessage() string {
	return c.startupMessage
}

// SetColorMode sets the output colorization policy.
func (c *Config) SetColorMode(mode ColorMode) {
	c.colorMode = mode
}

// ColorMode returns the output colorization policy.
func (c *Config) ColorMode() ColorMode {
	return c.colorMode
}

// Colorized reports whether output should be colorized under the current
// mode and environment.
func (c *Config) Colorized() bool {
	switch c.colorMode {
	case ColorForced:
		return true
	case ColorDisabled:
		return false
	default:
		return c.env.HasFeature(env.FeatureTTYStdout)
	}
}

// SetInteractiveMode sets the interactivity policy.
func (c *Config) SetInteractiveMode(mode InteractiveMode) {
	c.interactiveMode = mode
}

// InteractiveMode returns the interactivity policy.
func (c *Config) InteractiveMode() InteractiveMode {
	return c.interactiveMode
}

// Interactive reports whether the shell should behave interactively under
// the current mode and environment.
func (c *Config) Interactive() bool {
	switch c.interactiveMode {
	case InteractiveForced:
		return true
	case InteractiveDisabled:
		return false
	default:
		return c.env.HasFeature(env.FeatureTTYStdin)
	}
}

// SetVerbosity sets the output verbosity.
func (c *Config) SetVerbosity(v Verbosity) {
	c.verbosity = v
}

// Verbosity returns the output verbosity.
func (c *Config) Verbosity() Verbosity {
	return c.verbosity
}

// SetHistorySize caps the number of retained history entries. Zero means
// unlimited.
func (c *Config) SetHistorySize(size int) {
	c.historySize = size
}

// HistorySize returns the history entry cap.
func (c *Config) HistorySize() int {
	return c.historySize
}

// SetEraseDuplicates controls whether re-entered lines replace earlier
// history occurrences.
func (c *Config) SetEraseDuplicates(erase bool) {
	c.eraseDuplicates = erase
}

// EraseDuplicates reports whether duplicate history entries are erased.
func (c *Config) EraseDuplicates() bool {
	return c.eraseDuplicates
}

// SetRequireSemicolons controls whether input must be terminated
// explicitly before evaluation.
func (c *Config) SetRequireSemicolons(require bool) {
	c.requireSemicolons = require
}

// RequireSemicolons reports whether input must be terminated explicitly.
func (c *Config) RequireSemicolons() bool {
	return c.requireSemicolons
}

// SetErrorLoggingLevel sets the minimum level at which evaluation errors
// are logged.
func (c *Config) SetErrorLoggingLevel(level string) {
	c.errorLoggingLevel = level
}

// ErrorLoggingLevel returns the minimum evaluation error logging level.
func (c *Config) ErrorLoggingLevel() string {
	return c.errorLoggingLevel
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
