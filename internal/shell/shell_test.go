package shell

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/macomamio/psysh/internal/command"
	"github.com/macomamio/psysh/internal/config"
	"github.com/macomamio/psysh/internal/output"
	"github.com/macomamio/psysh/internal/testutil"
)

// scriptedReadline feeds a fixed sequence of lines and records history
// in memory.
type scriptedReadline struct {
	lines []string
	hist  []string
}

func (r *scriptedReadline) ReadLine(prompt string) (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReadline) AddHistory(line string) error {
	r.hist = append(r.hist, line)
	return nil
}

func (r *scriptedReadline) History() ([]string, error) {
	return append([]string(nil), r.hist...), nil
}

func (r *scriptedReadline) ClearHistory() error {
	r.hist = nil
	return nil
}

// newTestShell builds a shell over an isolated configuration with the
// given input lines scripted and output captured in buf.
func newTestShell(t *testing.T, lines []string, buf *bytes.Buffer) (*Shell, *scriptedReadline) {
	t.Helper()

	cfg, err := config.NewWithProvider(testutil.NewTestProvider(t), nil)
	if err != nil {
		t.Fatalf("NewWithProvider() error = %v", err)
	}
	rl := &scriptedReadline{lines: lines}
	cfg.SetReadline(rl)
	cfg.SetOutput(output.New(buf, nil))
	return New(cfg), rl
}

func TestNew_FlushesDeferredCommands(t *testing.T) {
	cfg, err := config.NewWithProvider(testutil.NewTestProvider(t), nil)
	if err != nil {
		t.Fatalf("NewWithProvider() error = %v", err)
	}
	cfg.AddCommands(command.Command{Name: "early", Description: "registered before the shell"})

	sh := New(cfg)

	cmds := sh.Commands()
	if len(cmds) != 1 || cmds[0].Name != "early" {
		t.Fatalf("Commands() = %+v, want the deferred command flushed", cmds)
	}
}

func TestAddCommands_AliasDispatch(t *testing.T) {
	var buf bytes.Buffer
	sh, _ := newTestShell(t, nil, &buf)

	var got []string
	sh.AddCommands(command.Command{
		Name:    "show",
		Aliases: []string{"sh"},
		Action: func(ctx context.Context, args []string) error {
			got = append(got, strings.Join(args, " "))
			return nil
		},
	})

	if err := sh.evaluate(context.Background(), "show a b"); err != nil {
		t.Fatalf("evaluate(show) error = %v", err)
	}
	if err := sh.evaluate(context.Background(), "sh c"); err != nil {
		t.Fatalf("evaluate(sh) error = %v", err)
	}

	want := []string{"a b", "c"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("command args = %v, want %v", got, want)
	}
}

func TestRun_PresentsCleanedInput(t *testing.T) {
	var buf bytes.Buffer
	sh, rl := newTestShell(t, []string{`hello`, `// a comment`, "   "}, &buf)

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `=> `) {
		t.Errorf("output %q missing presentation prefix", out)
	}
	if strings.Contains(out, "comment") {
		t.Errorf("output %q contains an uncleaned comment line", out)
	}
	if len(rl.hist) != 2 {
		t.Errorf("history = %v, want the two non-blank lines recorded", rl.hist)
	}
}

func TestRun_StartupMessage(t *testing.T) {
	var buf bytes.Buffer
	sh, _ := newTestShell(t, nil, &buf)
	sh.cfg.SetStartupMessage("welcome")

	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "welcome\n") {
		t.Errorf("output %q, want startup message first", buf.String())
	}
}

func TestHistoryCommand(t *testing.T) {
	var buf bytes.Buffer
	sh, rl := newTestShell(t, nil, &buf)
	sh.AddCommands(Builtins(sh)...)
	rl.hist = []string{"first", "second"}

	if err := sh.evaluate(context.Background(), "history"); err != nil {
		t.Fatalf("evaluate(history) error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"1  first", "2  second"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestDocCommand_MissingDatabase(t *testing.T) {
	var buf bytes.Buffer
	sh, _ := newTestShell(t, nil, &buf)
	sh.AddCommands(Builtins(sh)...)

	if err := sh.evaluate(context.Background(), "doc strings.Join"); err != nil {
		t.Fatalf("evaluate(doc) error = %v", err)
	}
	if !strings.Contains(buf.String(), "not installed") {
		t.Errorf("output %q, want missing-database notice", buf.String())
	}
}
