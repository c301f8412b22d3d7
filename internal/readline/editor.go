package readline

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Editor is a line editor with optional file-backed history. With an empty
// history file it behaves like Transient but remains usable on plain pipes.
type Editor struct {
	*Transient
	file string
}

// NewEditor creates an editor with the given history options. An existing
// history file is loaded eagerly; a missing one is a normal empty history.
func NewEditor(opts HistoryOptions) *Editor {
	ed := &Editor{
		Transient: NewTransient(opts.Size, opts.EraseDuplicates),
		file:      opts.File,
	}
	if ed.file != "" {
		ed.hist = loadHistory(ed.file, opts.Size)
	}
	return ed
}

// AddHistory appends a line to the history and, when a history file is
// configured, rewrites it.
func (e *Editor) AddHistory(line string) error {
	if err := e.Transient.AddHistory(line); err != nil {
		return err
	}
	return e.save()
}

// ClearHistory discards the history and truncates the history file.
func (e *Editor) ClearHistory() error {
	if err := e.Transient.ClearHistory(); err != nil {
		return err
	}
	return e.save()
}

func (e *Editor) save() error {
	if e.file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(e.file), 0o700); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	data := strings.Join(e.hist, "\n")
	if data != "" {
		data += "\n"
	}
	if err := os.WriteFile(e.file, []byte(data), 0o600); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// loadHistory reads a history file, keeping at most size entries from the
// tail. Read errors resolve to an empty history.
func loadHistory(path string, size int) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var hist []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			hist = append(hist, line)
		}
	}
	if size > 0 && len(hist) > size {
		hist = hist[len(hist)-size:]
	}
	return hist
}
