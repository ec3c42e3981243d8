package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"
)

// Term renders widgets as labeled text on a terminal. A single mutex keeps
// interleaved writes from concurrent pipelines line-atomic.
type Term struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerm creates a terminal surface writing to out.
func NewTerm(out io.Writer) *Term {
	return &Term{out: out}
}

func (t *Term) SetText(target, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%-20s %s\n", target+":", value)
}

func (t *Term) SetTable(target string, header []string, rows [][]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "[%s]\n", target)
	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func (t *Term) ShowPrediction(v PredictionView) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintln(t.out, "prediction result")
	fmt.Fprintf(t.out, "  probability: %s\n", v.Probability)
	fmt.Fprintf(t.out, "  risk:        %s\n", v.RiskLabel)
	fmt.Fprintf(t.out, "  confidence:  %s\n", v.Confidence)
	fmt.Fprintf(t.out, "  action:      %s\n", v.Action)
}

func (t *Term) ShowBanner(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "!! %s\n", msg)
}

func (t *Term) HideBanner() {}

func (t *Term) Alert(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "ALERT: %s\n", msg)
}
