package chart

import (
	"sync"

	"github.com/rotisserie/eris"
)

// Handle is a live chart instance owned by the sink.
type Handle interface {
	Dispose()
}

// Sink accepts a declarative series and draws it at a named target.
type Sink interface {
	Bind(target string, s Series) (Handle, error)
}

// Registry tracks the active chart handle per render target and disposes
// the previous instance before rebinding, so repeated route entry cannot
// leak duplicate chart instances.
type Registry struct {
	mu      sync.Mutex
	sink    Sink
	handles map[string]Handle
}

// NewRegistry creates a registry drawing into the given sink.
func NewRegistry(sink Sink) *Registry {
	return &Registry{
		sink:    sink,
		handles: make(map[string]Handle),
	}
}

// Render draws a series at the target, replacing any chart already bound
// there.
func (r *Registry) Render(target string, s Series) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.handles[target]; ok {
		prev.Dispose()
		delete(r.handles, target)
	}

	h, err := r.sink.Bind(target, s)
	if err != nil {
		return eris.Wrapf(err, "chart: bind %s", target)
	}
	r.handles[target] = h
	return nil
}

// Active returns whether a chart is currently bound at the target.
func (r *Registry) Active(target string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handles[target]
	return ok
}
