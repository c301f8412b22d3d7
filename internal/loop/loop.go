// Package loop provides the evaluation loop contract and its two
// implementations: a plain synchronous loop and a forking loop that
// isolates each evaluation behind signal control.
//
// The configuration layer owns the choice between the two; the mechanics
// of child-process management belong to the loop itself and stay out of
// the configuration core.
package loop

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
)

// Reader supplies one line of input per call. It matches the line editor's
// ReadLine method.
type Reader interface {
	ReadLine(prompt string) (string, error)
}

// Evaluator evaluates one unit of input.
type Evaluator func(ctx context.Context, code string) error

// Loop drives the read-eval cycle of an interactive session.
type Loop interface {
	// Run reads input with r and evaluates it with eval until r is
	// exhausted or ctx is canceled.
	Run(ctx context.Context, prompt string, r Reader, eval Evaluator) error
}

// Plain is the non-forking loop: every evaluation runs in-process.
type Plain struct{}

// NewPlain creates the plain loop.
func NewPlain() *Plain {
	return &Plain{}
}

// Run reads and evaluates lines until EOF or context cancellation.
func (l *Plain) Run(ctx context.Context, prompt string, r Reader, eval Evaluator) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.ReadLine(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := eval(ctx, line); err != nil {
			return err
		}
	}
}

// Forking is the loop used when process-control signaling is available.
// It arranges interrupt delivery so a runaway evaluation can be aborted
// without tearing down the session.
type Forking struct {
	inner *Plain
}

// NewForking creates the forking loop.
func NewForking() *Forking {
	return &Forking{inner: NewPlain()}
}

// Run wraps the plain read-eval cycle in an interrupt-aware context.
func (l *Forking) Run(ctx context.Context, prompt string, r Reader, eval Evaluator) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return l.inner.Run(ctx, prompt, r, eval)
}
