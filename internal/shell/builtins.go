package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/macomamio/psysh/internal/command"
)

// Builtins returns the standard extension commands. They are registered
// through the same deferred path as user commands, so a config script can
// shadow them by name.
func Builtins(s *Shell) []command.Command {
	return []command.Command{
		{
			Name:        "doc",
			Description: "Show documentation for an identifier",
			Action:      s.docCommand,
		},
		{
			Name:        "history",
			Aliases:     []string{"hist"},
			Description: "Show the input history",
			Action:      s.historyCommand,
		},
	}
}

func (s *Shell) docCommand(ctx context.Context, args []string) error {
	out := s.cfg.Output()
	if len(args) == 0 {
		return out.WriteLine("usage: doc <identifier>")
	}

	db, err := s.cfg.ManualDB()
	if err != nil {
		return err
	}
	if db == nil {
		return out.WriteLine("documentation database not installed")
	}

	doc, err := db.Lookup(args[0])
	if err != nil {
		return err
	}
	if doc == "" {
		return out.WriteLine(fmt.Sprintf("no documentation for %q", args[0]))
	}
	return out.Page(doc)
}

func (s *Shell) historyCommand(ctx context.Context, args []string) error {
	hist, err := s.cfg.Readline().History()
	if err != nil {
		return err
	}
	var b strings.Builder
	for i, line := range hist {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, line)
	}
	return s.cfg.Output().Page(b.String())
}
