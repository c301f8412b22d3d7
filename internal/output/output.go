// Package output provides the shell's output sink and pager contracts.
//
// The configuration layer decides which pager, if any, to construct; the
// sink itself only routes writes either directly to the underlying writer
// or through the configured pager.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output is the shell's output sink.
type Output struct {
	w     io.Writer
	pager Pager
}

// New creates an output sink on the given writer. A nil pager means
// paged writes print directly.
func New(w io.Writer, pager Pager) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{w: w, pager: pager}
}

// Write writes directly to the underlying writer.
func (o *Output) Write(p []byte) (int, error) {
	return o.w.Write(p)
}

// WriteLine writes a line followed by a newline.
func (o *Output) WriteLine(s string) error {
	_, err := fmt.Fprintln(o.w, s)
	return err
}

// Page routes content through the pager when one is configured, otherwise
// prints it directly.
func (o *Output) Page(content string) error {
	if o.pager == nil {
		_, err := io.Copy(o.w, strings.NewReader(content))
		return err
	}
	return o.pager.Page(strings.NewReader(content))
}

// Pager returns the configured pager, nil when none.
func (o *Output) Pager() Pager {
	return o.pager
}
