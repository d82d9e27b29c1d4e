package chopper

import (
	"fmt"
	"io"
)

// Progress prints a single self-overwriting status line measured in input
// bytes, so no counting pass over the file is needed up front.
type Progress struct {
	out     io.Writer
	label   string
	total   int64
	pct     int
	records int
}

// NewProgress reports against total bytes. A nil out disables output.
func NewProgress(out io.Writer, label string, total int64) *Progress {
	return &Progress{out: out, label: label, total: total, pct: -1}
}

// Update records one more finished record at the given byte offset. The
// line is only redrawn when the whole percentage changes.
func (p *Progress) Update(consumed int64) {
	p.records++
	if p.out == nil {
		return
	}
	pct := p.percent(consumed)
	if pct == p.pct {
		return
	}
	p.pct = pct
	fmt.Fprintf(p.out, "\r%s: %3d%% (%d records)", p.label, pct, p.records)
}

// Done prints the final 100% line and terminates it.
func (p *Progress) Done() {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, "\r%s: %3d%% (%d records)\n", p.label, 100, p.records)
}

// Records is the number of Update calls so far.
func (p *Progress) Records() int { return p.records }

func (p *Progress) percent(consumed int64) int {
	if p.total <= 0 {
		return 0
	}
	pct := int(consumed * 100 / p.total)
	if pct > 100 {
		pct = 100
	}
	return pct
}
