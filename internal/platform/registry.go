package platform

import (
	"fmt"
	"sync"

	"github.com/alnah/go-mdexport/internal/theme"
)

// Registry maps platform ids to exporters, remembering registration
// order. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	exporters map[string]Exporter
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{exporters: make(map[string]Exporter)}
}

// NewDefaultRegistry creates a registry holding every built-in exporter
// in display order: wechat, zhihu, juejin, csdn, jianshu, markdown.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, e := range []Exporter{
		NewWeChatExporter(),
		NewZhihuExporter(),
		NewJuejinExporter(),
		NewCSDNExporter(),
		NewJianshuExporter(),
		NewMarkdownExporter(),
	} {
		// Built-ins always carry an id.
		_ = r.Register(e)
	}
	return r
}

// Register adds e, replacing any exporter with the same id in place.
func (r *Registry) Register(e Exporter) error {
	if e == nil {
		return fmt.Errorf("%w: nil exporter", ErrMissingID)
	}
	id, ok := exporterID(e)
	if !ok {
		return fmt.Errorf("%w: nil %T", ErrMissingID, e)
	}
	if id == "" {
		return fmt.Errorf("%w: %T", ErrMissingID, e)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.exporters[id]; !exists {
		r.order = append(r.order, id)
	}
	r.exporters[id] = e
	return nil
}

// exporterID reads e.ID(), reporting false when a typed-nil exporter
// panics on the call.
func exporterID(e Exporter) (id string, ok bool) {
	defer func() {
		if recover() != nil {
			id, ok = "", false
		}
	}()
	return e.ID(), true
}

// Get returns the exporter for id.
func (r *Registry) Get(id string) (Exporter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.exporters[id]
	return e, ok
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// All returns the exporters in registration order.
func (r *Registry) All() []Exporter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Exporter, len(r.order))
	for i, id := range r.order {
		out[i] = r.exporters[id]
	}
	return out
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Export runs the exporter for id. An unknown id yields (nil, nil).
func (r *Registry) Export(id, markdown, html string, t *theme.Theme) (*ExportResult, error) {
	e, ok := r.Get(id)
	if !ok {
		return nil, nil
	}
	return e.Export(markdown, html, t)
}
