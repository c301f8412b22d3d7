package readline

import (
	"github.com/macomamio/psysh/internal/env"
)

// Backend is one candidate implementation in the fallback chain.
type Backend struct {
	// Name identifies the backend, e.g. "term".
	Name string

	// Supported reports whether the backend can run in the given
	// environment. Probed lazily, at selection time.
	Supported func(p env.Provider) bool

	// New constructs the backend with the given history options.
	New func(opts HistoryOptions) Readline
}

// DefaultBackends returns the standard fallback chain, best first:
// a full terminal editor, a plain line reader with persistent history,
// and a plain line reader without persistence.
func DefaultBackends() []Backend {
	return []Backend{
		{
			Name: "term",
			Supported: func(p env.Provider) bool {
				return p.HasFeature(env.FeatureReadline)
			},
			New: func(opts HistoryOptions) Readline {
				return NewEditor(opts)
			},
		},
		{
			Name: "stdio",
			Supported: func(p env.Provider) bool {
				return p.HasFeature(env.FeatureTTYStdin)
			},
			New: func(opts HistoryOptions) Readline {
				return NewEditor(opts)
			},
		},
		{
			Name: "stdio-transient",
			Supported: func(p env.Provider) bool {
				return p.HasFeature(env.FeatureTTYStdin)
			},
			New: func(opts HistoryOptions) Readline {
				opts.File = ""
				return NewEditor(opts)
			},
		},
	}
}

// Select walks the chain in order and constructs the first supported
// backend. When enabled is false, or no backend supports the environment,
// it falls back to the transient in-memory editor.
func Select(p env.Provider, backends []Backend, enabled bool, opts HistoryOptions) Readline {
	if enabled {
		for _, b := range backends {
			if b.Supported != nil && b.Supported(p) {
				return b.New(opts)
			}
		}
	}
	return NewTransient(opts.Size, opts.EraseDuplicates)
}
