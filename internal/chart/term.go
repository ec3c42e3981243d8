package chart

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TermSink draws series as plain text blocks, one per target. It is the
// terminal stand-in for a graphical charting engine.
type TermSink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTermSink creates a sink writing to out.
func NewTermSink(out io.Writer) *TermSink {
	return &TermSink{out: out}
}

const termBarWidth = 40

// Bind renders the series immediately and returns a no-op handle; text
// output has no instance to dispose.
func (t *TermSink) Bind(target string, s Series) (Handle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", target, s.Kind)

	max := 0.0
	for _, v := range s.Values {
		if v > max {
			max = v
		}
	}

	for i, label := range s.Labels {
		v := 0.0
		if i < len(s.Values) {
			v = s.Values[i]
		}
		width := 0
		if max > 0 {
			width = int(v / max * termBarWidth)
		}
		fmt.Fprintf(&b, "  %-20s %-*s %.1f\n", label, termBarWidth, strings.Repeat("#", width), v)
	}

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return nil, err
	}
	return termHandle{}, nil
}

type termHandle struct{}

func (termHandle) Dispose() {}
