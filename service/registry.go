package service

import (
	"fmt"

	"github.com/ludo-technologies/qscan/domain"
)

// ToolRegistry maps adapter ids to adapters and answers which adapters
// can measure a given axis. It is built once during wiring and read-only
// afterwards; registration is not safe for concurrent use, lookups are.
type ToolRegistry struct {
	adapters map[string]domain.ToolAdapter
	order    []string
}

// NewToolRegistry creates an empty registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		adapters: make(map[string]domain.ToolAdapter),
	}
}

// Register adds an adapter under its id. Registering two adapters with
// the same id is a wiring bug, not a runtime condition, so it panics.
func (r *ToolRegistry) Register(adapter domain.ToolAdapter) {
	id := adapter.ID()
	if _, exists := r.adapters[id]; exists {
		panic(fmt.Sprintf("qscan: adapter already registered: %s", id))
	}
	r.adapters[id] = adapter
	r.order = append(r.order, id)
}

// AdaptersForAxis returns every registered adapter that declares support
// for the axis, in registration order. Registration order is the
// fallback order during resolution.
func (r *ToolRegistry) AdaptersForAxis(axis domain.Axis) []domain.ToolAdapter {
	var candidates []domain.ToolAdapter
	for _, id := range r.order {
		adapter := r.adapters[id]
		for _, a := range adapter.Axes() {
			if a == axis {
				candidates = append(candidates, adapter)
				break
			}
		}
	}
	return candidates
}

// Adapter looks up an adapter by id.
func (r *ToolRegistry) Adapter(id string) (domain.ToolAdapter, bool) {
	adapter, ok := r.adapters[id]
	return adapter, ok
}

// RegisteredIDs returns all registered ids in registration order.
func (r *ToolRegistry) RegisteredIDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}
