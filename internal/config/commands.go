package config

import "github.com/macomamio/psysh/internal/command"

// AddCommands registers shell extension commands. When no shell is
// attached yet the commands buffer in order; once one is, they go straight
// through. Config scripts run before the shell exists, so registration has
// to tolerate either ordering.
func (c *Config) AddCommands(cmds ...command.Command) {
	if len(cmds) == 0 {
		return
	}
	if c.shell != nil {
		c.shell.AddCommands(cmds...)
		return
	}
	c.pending = append(c.pending, cmds...)
}

// AttachShell binds the shell that consumes registered commands and
// flushes anything buffered, in registration order, exactly once.
func (c *Config) AttachShell(s command.Shell) {
	c.shell = s
	if len(c.pending) > 0 {
		c.shell.AddCommands(c.pending...)
		c.pending = nil
	}
}
