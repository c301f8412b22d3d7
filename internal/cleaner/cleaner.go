// Package cleaner normalizes raw shell input before evaluation.
package cleaner

import "strings"

// Pass is a single normalization step applied to the input code.
type Pass func(code string) string

// Cleaner applies an ordered list of normalization passes.
type Cleaner struct {
	passes []Pass
}

// New creates a cleaner with the default pass list: trailing-whitespace
// trimming, blank-line collapsing, and line-comment stripping.
func New() *Cleaner {
	return &Cleaner{
		passes: []Pass{
			trimTrailingSpace,
			stripLineComments,
			collapseBlankLines,
		},
	}
}

// NewWithPasses creates a cleaner with a custom pass list.
func NewWithPasses(passes ...Pass) *Cleaner {
	return &Cleaner{passes: passes}
}

// Clean runs all passes over the code in order.
func (c *Cleaner) Clean(code string) string {
	for _, pass := range c.passes {
		code = pass(code)
	}
	return code
}

func trimTrailingSpace(code string) string {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func stripLineComments(code string) string {
	lines := strings.Split(code, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func collapseBlankLines(code string) string {
	lines := strings.Split(code, "\n")
	kept := lines[:0]
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
