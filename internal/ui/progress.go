package ui

import (
	"fmt"
	"io"
)

// Progress reports completion of sequential hook runs with a labeled
// [n/total] counter, one line per finished item.
type Progress struct {
	out   io.Writer
	label string
	total int
	done  int
}

// NewProgress creates a progress counter for total items under the
// given label.
func NewProgress(out io.Writer, label string, total int) *Progress {
	return &Progress{out: out, label: label, total: total}
}

// Done marks one item as completed and prints the current progress.
func (p *Progress) Done(item string) {
	p.done++
	_, _ = fmt.Fprintf(p.out, "%s [%d/%d] %s\n", p.label, p.done, p.total, item)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}
