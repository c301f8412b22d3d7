package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/macomamio/psysh/internal/config"
)

// charmLogger adapts charmbracelet/log to the configuration Logger
// interface.
type charmLogger struct {
	l *charmlog.Logger
}

// newLogger builds the process logger at a level matching the shell
// verbosity. Logs go to stderr so they never interleave with shell output.
func newLogger(v config.Verbosity) config.Logger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
	switch v {
	case config.VerbosityQuiet:
		l.SetLevel(charmlog.ErrorLevel)
	case config.VerbosityVerbose:
		l.SetLevel(charmlog.InfoLevel)
	case config.VerbosityDebug:
		l.SetLevel(charmlog.DebugLevel)
	default:
		l.SetLevel(charmlog.WarnLevel)
	}
	return &charmLogger{l: l}
}

func (c *charmLogger) Debug(msg string, keysAndValues ...interface{}) {
	c.l.Debug(msg, keysAndValues...)
}

func (c *charmLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Info(msg, keysAndValues...)
}

func (c *charmLogger) Warn(msg string, keysAndValues ...interface{}) {
	c.l.Warn(msg, keysAndValues...)
}

func (c *charmLogger) Error(msg string, keysAndValues ...interface{}) {
	c.l.Error(msg, keysAndValues...)
}
