package readline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAppendHistory(t *testing.T) {
	tests := []struct {
		name  string
		hist  []string
		line  string
		size  int
		erase bool
		want  []string
	}{
		{"append", []string{"a"}, "b", 0, false, []string{"a", "b"}},
		{"empty line ignored", []string{"a"}, "", 0, false, []string{"a"}},
		{"duplicate kept", []string{"a", "b"}, "a", 0, false, []string{"a", "b", "a"}},
		{"duplicate erased", []string{"a", "b"}, "a", 0, true, []string{"b", "a"}},
		{"size cap drops oldest", []string{"a", "b"}, "c", 2, false, []string{"b", "c"}},
		{"erase then cap", []string{"a", "b", "c"}, "a", 2, true, []string{"c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist := make([]string, len(tt.hist))
			copy(hist, tt.hist)
			got := appendHistory(hist, tt.line, tt.size, tt.erase)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("appendHistory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransient_HistoryLifecycle(t *testing.T) {
	tr := NewTransient(0, false)

	for _, line := range []string{"one", "two"} {
		if err := tr.AddHistory(line); err != nil {
			t.Fatalf("AddHistory(%q) error = %v", line, err)
		}
	}
	hist, err := tr.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !reflect.DeepEqual(hist, []string{"one", "two"}) {
		t.Errorf("History() = %v", hist)
	}

	if err := tr.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	hist, _ = tr.History()
	if len(hist) != 0 {
		t.Errorf("History() after clear = %v, want empty", hist)
	}
}

func TestEditor_PersistsHistory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")

	ed := NewEditor(HistoryOptions{File: file})
	if err := ed.AddHistory("first"); err != nil {
		t.Fatalf("AddHistory() error = %v", err)
	}
	if err := ed.AddHistory("second"); err != nil {
		t.Fatalf("AddHistory() error = %v", err)
	}

	// A fresh editor on the same file sees the saved history.
	again := NewEditor(HistoryOptions{File: file})
	hist, err := again.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !reflect.DeepEqual(hist, []string{"first", "second"}) {
		t.Errorf("reloaded history = %v", hist)
	}
}

func TestEditor_LoadRespectsSizeCap(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	if err := os.WriteFile(file, []byte("a\nb\nc\nd\n"), 0o600); err != nil {
		t.Fatalf("write history: %v", err)
	}

	ed := NewEditor(HistoryOptions{File: file, Size: 2})
	hist, _ := ed.History()
	if !reflect.DeepEqual(hist, []string{"c", "d"}) {
		t.Errorf("capped history = %v, want tail [c d]", hist)
	}
}

func TestEditor_ClearTruncatesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "history")
	ed := NewEditor(HistoryOptions{File: file})
	if err := ed.AddHistory("line"); err != nil {
		t.Fatalf("AddHistory() error = %v", err)
	}

	if err := ed.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory() error = %v", err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("history file not truncated: %q", data)
	}
}

func TestEditor_MissingHistoryFileIsEmpty(t *testing.T) {
	ed := NewEditor(HistoryOptions{File: filepath.Join(t.TempDir(), "absent")})
	hist, err := ed.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(hist) != 0 {
		t.Errorf("History() = %v, want empty", hist)
	}
}
