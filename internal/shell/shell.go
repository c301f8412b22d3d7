// Package shell is the interactive session that consumes the resolved
// configuration: it reads input with the configured line editor, cleans
// it, and presents evaluation results through the configured output sink.
package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/macomamio/psysh/internal/command"
	"github.com/macomamio/psysh/internal/config"
)

// Shell is an interactive session bound to a configuration. Every service
// it uses is pulled from the configuration on demand, so construction is
// cheap and resolution stays lazy.
type Shell struct {
	cfg      *config.Config
	commands []command.Command
	byName   map[string]*command.Command
}

// New creates a shell over the given configuration and attaches itself as
// the consumer of deferred command registrations.
func New(cfg *config.Config) *Shell {
	sh := &Shell{
		cfg:    cfg,
		byName: make(map[string]*command.Command),
	}
	cfg.AttachShell(sh)
	return sh
}

// AddCommands registers extension commands, preserving order.
func (s *Shell) AddCommands(cmds ...command.Command) {
	for _, cmd := range cmds {
		s.commands = append(s.commands, cmd)
		c := &s.commands[len(s.commands)-1]
		s.byName[cmd.Name] = c
		for _, alias := range cmd.Aliases {
			s.byName[alias] = c
		}
	}
}

// Commands returns the registered commands in registration order.
func (s *Shell) Commands() []command.Command {
	return s.commands
}

// Run drives the read-eval cycle with the configured loop, line editor and
// cleaner until input is exhausted.
func (s *Shell) Run(ctx context.Context) error {
	out := s.cfg.Output()
	if msg := s.cfg.StartupMessage(); msg != "" {
		if err := out.WriteLine(msg); err != nil {
			return err
		}
	}

	rl := s.cfg.Readline()
	return s.cfg.Loop().Run(ctx, s.cfg.Prompt(), rl, func(ctx context.Context, line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		if err := rl.AddHistory(line); err != nil {
			return err
		}
		return s.evaluate(ctx, line)
	})
}

// evaluate dispatches a command invocation or presents the cleaned input.
// Code evaluation proper belongs to the evaluation subsystem; the shell
// only routes.
func (s *Shell) evaluate(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if cmd, ok := s.byName[fields[0]]; ok {
		if cmd.Action == nil {
			return s.cfg.Output().WriteLine(cmd.Description)
		}
		return cmd.Action(ctx, fields[1:])
	}

	code := s.cfg.CodeCleaner().Clean(line)
	if code == "" {
		return nil
	}
	rendered := s.cfg.Presenter().Present(code)
	return s.cfg.Output().WriteLine(fmt.Sprintf("=> %s", rendered))
}
