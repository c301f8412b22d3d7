// Package readline defines the line editor contract consumed by the shell
// and the fallback chain that picks a concrete backend for the current
// environment.
//
// Backends are candidates in an ordered chain; the first whose support
// predicate reports true wins. When line editing is disabled by policy, or
// no backend supports the environment, the transient in-memory editor is
// used: input still works, but history lives only for the process lifetime.
package readline

// Readline is the line editor capability contract.
type Readline interface {
	// ReadLine displays the prompt and reads one line of input.
	ReadLine(prompt string) (string, error)

	// AddHistory appends a line to the edit history.
	AddHistory(line string) error

	// History returns the current history, oldest first.
	History() ([]string, error)

	// ClearHistory discards all history.
	ClearHistory() error
}

// HistoryOptions control how a backend keeps edit history.
type HistoryOptions struct {
	// File is the persistence path. Empty means memory-only.
	File string

	// Size caps the number of retained entries. Zero means unlimited.
	Size int

	// EraseDuplicates removes earlier occurrences of a re-entered line.
	EraseDuplicates bool
}
