package param

import (
	"fmt"
	"sync"
)

// Registry manages plugin parameters. Lookups are safe from any thread; the
// set of parameters is expected to be fixed before audio starts.
type Registry struct {
	params map[uint32]*Parameter
	order  []uint32 // Maintain order for indexed access
	mu     sync.RWMutex
}

// NewRegistry creates a new parameter registry
func NewRegistry() *Registry {
	return &Registry{
		params: make(map[uint32]*Parameter),
	}
}

// Add registers new parameters. Duplicate IDs are rejected.
func (r *Registry) Add(params ...*Parameter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range params {
		if _, exists := r.params[p.ID]; exists {
			return fmt.Errorf("parameter %d (%s): %w", p.ID, p.Name, ErrDuplicateID)
		}
		r.params[p.ID] = p
		r.order = append(r.order, p.ID)
	}

	return nil
}

// Get retrieves a parameter by ID
func (r *Registry) Get(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.params[id]
}

// Count returns the number of parameters
func (r *Registry) Count() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int32(len(r.order))
}

// All returns all parameters in order
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, len(r.order))
	for i, id := range r.order {
		result[i] = r.params[id]
	}

	return result
}

// ResetAll restores every parameter to its default value
func (r *Registry) ResetAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.params {
		p.Reset()
	}
}

// SetPlain sets a parameter's plain value by ID
func (r *Registry) SetPlain(id uint32, plain float64) error {
	p := r.Get(id)
	if p == nil {
		return fmt.Errorf("parameter %d: %w", id, ErrUnknownID)
	}
	p.SetPlainValue(plain)
	return nil
}

// Lookup finds a parameter by name or short name
func (r *Registry) Lookup(name string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		p := r.params[id]
		if p.Name == name || p.ShortName == name {
			return p
		}
	}
	return nil
}
