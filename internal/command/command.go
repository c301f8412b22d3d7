// Package command defines the shell extension command descriptor and the
// contract the configuration layer uses to hand commands to a shell.
package command

import "context"

// Command describes a shell extension command. Commands are declarative:
// registration carries the descriptor, execution happens inside the shell
// that eventually receives it.
type Command struct {
	// Name is the primary invocation name, e.g. "doc" or "history".
	Name string

	// Aliases are alternative invocation names.
	Aliases []string

	// Description is a one-line help summary.
	Description string

	// Action runs the command. A nil Action is legal for commands whose
	// behavior is supplied by the shell itself.
	Action func(ctx context.Context, args []string) error
}

// Shell is the consumer of registered commands. The interactive shell
// implements it; the configuration layer only feeds it.
type Shell interface {
	// AddCommands registers extension commands with the shell, preserving
	// registration order.
	AddCommands(cmds ...Command)
}
