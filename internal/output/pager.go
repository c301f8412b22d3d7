package output

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

// Pager displays long content one screen at a time.
type Pager interface {
	// Page displays the content read from r.
	Page(r io.Reader) error
}

// CommandPager pages through an external command such as "less -R -F -X".
type CommandPager struct {
	// Command is the full invocation, binary plus flags.
	Command string
}

// NewCommandPager creates a pager that shells out to the given command.
func NewCommandPager(command string) *CommandPager {
	return &CommandPager{Command: command}
}

// Page runs the pager command with r as stdin, attached to the terminal.
func (p *CommandPager) Page(r io.Reader) error {
	fields := strings.Fields(p.Command)
	if len(fields) == 0 {
		_, err := io.Copy(os.Stdout, r)
		return err
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = r
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// PassthroughPager writes content straight to a writer without paging.
type PassthroughPager struct {
	W io.Writer
}

// Page copies the content to the writer.
func (p *PassthroughPager) Page(r io.Reader) error {
	w := p.W
	if w == nil {
		w = os.Stdout
	}
	_, err := io.Copy(w, r)
	return err
}
