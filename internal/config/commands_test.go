package config

import (
	"strings"
	"testing"

	"github.com/macomamio/psysh/internal/command"
)

// recordingShell records every command it receives, in order.
type recordingShell struct {
	received []command.Command
	calls    int
}

func (s *recordingShell) AddCommands(cmds ...command.Command) {
	s.received = append(s.received, cmds...)
	s.calls++
}

func names(cmds []command.Command) string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Name
	}
	return strings.Join(out, ",")
}

func TestAddCommands_BuffersUntilAttach(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	c.AddCommands(command.Command{Name: "a"}, command.Command{Name: "b"})
	c.AddCommands(command.Command{Name: "c"})

	sink := &recordingShell{}
	c.AttachShell(sink)

	if got := names(sink.received); got != "a,b,c" {
		t.Errorf("flushed commands = %s, want a,b,c", got)
	}
	if sink.calls != 1 {
		t.Errorf("flush used %d calls, want exactly 1", sink.calls)
	}

	// After attach, registration goes straight through with no buffering.
	c.AddCommands(command.Command{Name: "d"})
	if got := names(sink.received); got != "a,b,c,d" {
		t.Errorf("commands after attach = %s, want a,b,c,d", got)
	}
	if len(c.pending) != 0 {
		t.Errorf("pending buffer not empty after attach: %v", c.pending)
	}
}

func TestAttachShell_NothingBuffered(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	sink := &recordingShell{}
	c.AttachShell(sink)

	if sink.calls != 0 {
		t.Errorf("AttachShell flushed %d times with an empty buffer, want 0", sink.calls)
	}
}

func TestAddCommands_EmptyCallIsNoop(t *testing.T) {
	p := newTestProvider(t)
	c := newTestConfig(t, p, nil)

	c.AddCommands()
	if len(c.pending) != 0 {
		t.Errorf("empty AddCommands buffered something: %v", c.pending)
	}
}
