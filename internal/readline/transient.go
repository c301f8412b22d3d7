package readline

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Transient is the always-available fallback editor. It reads plain lines
// with no terminal control and keeps history in memory only, so history is
// lost when the process exits.
type Transient struct {
	in    *bufio.Reader
	out   io.Writer
	hist  []string
	size  int
	erase bool
}

// NewTransient creates a transient editor on stdin/stdout.
func NewTransient(size int, eraseDuplicates bool) *Transient {
	return &Transient{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		size:  size,
		erase: eraseDuplicates,
	}
}

// ReadLine displays the prompt and reads one line.
func (t *Transient) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return trimNewline(line), nil
}

// AddHistory appends a line to the in-memory history.
func (t *Transient) AddHistory(line string) error {
	t.hist = appendHistory(t.hist, line, t.size, t.erase)
	return nil
}

// History returns the in-memory history, oldest first.
func (t *Transient) History() ([]string, error) {
	out := make([]string, len(t.hist))
	copy(out, t.hist)
	return out, nil
}

// ClearHistory discards the in-memory history.
func (t *Transient) ClearHistory() error {
	t.hist = nil
	return nil
}

func trimNewline(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

// appendHistory applies the duplicate-erasure and size policies shared by
// all backends.
func appendHistory(hist []string, line string, size int, erase bool) []string {
	if line == "" {
		return hist
	}
	if erase {
		kept := hist[:0]
		for _, h := range hist {
			if h != line {
				kept = append(kept, h)
			}
		}
		hist = kept
	}
	hist = append(hist, line)
	if size > 0 && len(hist) > size {
		hist = hist[len(hist)-size:]
	}
	return hist
}
