package config

import (
	"os"

	"github.com/macomamio/psysh/internal/cleaner"
	"github.com/macomamio/psysh/internal/loop"
	"github.com/macomamio/psysh/internal/manual"
	"github.com/macomamio/psysh/internal/output"
	"github.com/macomamio/psysh/internal/present"
	"github.com/macomamio/psysh/internal/readline"
)

// lessFlags are appended when a pager is found on the search path:
// raw control characters, quit-if-one-screen, no screen clearing.
const lessFlags = " -R -F -X"

// SetReadline binds the line editor explicitly.
func (c *Config) SetReadline(r readline.Readline) {
	c.readlineSlot = r
}

// Readline returns the line editor, constructing one on first access.
//
// When the effective line editing policy is true, the fallback chain is
// walked in order and the first supported backend wins; otherwise, or when
// no backend supports the environment, the transient in-memory editor is
// used.
func (c *Config) Readline() readline.Readline {
	if c.readlineSlot != nil {
		return c.readlineSlot
	}
	backends := c.backends
	if backends == nil {
		backends = readline.DefaultBackends()
	}
	c.readlineSlot = readline.Select(c.env, backends, c.UseReadline(), readline.HistoryOptions{
		File:            c.HistoryFile(),
		Size:            c.historySize,
		EraseDuplicates: c.eraseDuplicates,
	})
	c.logger.Debug("resolved line editor", "policy", c.UseReadline())
	return c.readlineSlot
}

// SetReadlineBackends replaces the fallback chain used by lazy line editor
// resolution. It has no effect on an already bound slot.
func (c *Config) SetReadlineBackends(backends []readline.Backend) {
	c.backends = backends
}

// SetCodeCleaner binds the code cleaner explicitly.
func (c *Config) SetCodeCleaner(cl *cleaner.Cleaner) {
	c.cleanerSlot = cl
}

// CodeCleaner returns the code cleaner, constructing the default on first
// access.
func (c *Config) CodeCleaner() *cleaner.Cleaner {
	if c.cleanerSlot == nil {
		c.cleanerSlot = cleaner.New()
	}
	return c.cleanerSlot
}

// SetOutput binds the output sink explicitly.
func (c *Config) SetOutput(o *output.Output) {
	c.outputSlot = o
}

// Output returns the output sink, constructing one on stdout with the
// resolved pager on first access.
func (c *Config) Output() *output.Output {
	if c.outputSlot == nil {
		c.outputSlot = output.New(os.Stdout, c.Pager())
	}
	return c.outputSlot
}

// SetPager binds the pager explicitly. It accepts either a command string,
// stored as a CommandPager, or an output.Pager value. Anything else is an
// *InvalidArgumentError.
func (c *Config) SetPager(v any) error {
	switch pager := v.(type) {
	case string:
		c.pagerSlot = output.NewCommandPager(pager)
	case output.Pager:
		c.pagerSlot = pager
	default:
		return &InvalidArgumentError{
			Name:     optPager,
			Value:    v,
			Expected: "a command string or an output.Pager",
		}
	}
	c.pagerDone = true
	return nil
}

// Pager returns the pager, resolving one on first access. Nil means "no
// pager; print directly".
//
// Resolution runs only when process-control signaling is in effect: first
// the PAGER environment variable, then a probe for less on the search
// path with display flags appended. Either way the outcome, including
// "none", is memoized.
func (c *Config) Pager() output.Pager {
	if c.pagerDone {
		return c.pagerSlot
	}
	c.pagerDone = true
	if !c.UsePcntl() {
		return nil
	}
	if pager, ok := c.env.Var("PAGER"); ok && pager != "" {
		c.pagerSlot = output.NewCommandPager(pager)
		c.logger.Debug("resolved pager from environment", "command", pager)
		return c.pagerSlot
	}
	if path, err := c.env.LookPath("less"); err == nil {
		c.pagerSlot = output.NewCommandPager(path + lessFlags)
		c.logger.Debug("resolved pager from search path", "command", c.pagerSlot.(*output.CommandPager).Command)
	}
	return c.pagerSlot
}

// SetLoop binds the evaluation loop explicitly.
func (c *Config) SetLoop(l loop.Loop) {
	c.loopSlot = l
}

// Loop returns the evaluation loop, constructing one on first access:
// the forking loop when process-control signaling is in effect, the plain
// loop otherwise.
func (c *Config) Loop() loop.Loop {
	if c.loopSlot == nil {
		if c.UsePcntl() {
			c.loopSlot = loop.NewForking()
		} else {
			c.loopSlot = loop.NewPlain()
		}
	}
	return c.loopSlot
}

// SetManualDB binds the documentation database explicitly.
func (c *Config) SetManualDB(db *manual.DB) {
	c.manualSlot = db
	c.manualDone = true
}

// ManualDB returns the documentation database connection, opening it on
// first access. A missing database file resolves to nil without error;
// a connection failure to an existing file is a real error and is not
// memoized.
func (c *Config) ManualDB() (*manual.DB, error) {
	if c.manualDone {
		return c.manualSlot, nil
	}
	path := c.ManualDBFile()
	if !fileExists(path) {
		c.manualDone = true
		return nil, nil
	}
	db, err := manual.Open(path)
	if err != nil {
		return nil, err
	}
	c.manualSlot = db
	c.manualDone = true
	c.logger.Debug("opened manual database", "path", path)
	return c.manualSlot, nil
}

// Presenter returns the presenter manager, constructing the default set on
// first access.
func (c *Config) Presenter() *present.Manager {
	if c.presentSlot == nil {
		c.presentSlot = present.NewManager()
	}
	return c.presentSlot
}

// AddPresenters registers value presenters with the presenter manager.
// Later registrations take precedence over earlier ones.
func (c *Config) AddPresenters(presenters ...present.Presenter) {
	c.Presenter().Add(presenters...)
}
