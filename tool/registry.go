package tool

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

type registration struct {
	spec       *Spec
	descriptor *Descriptor
	schema     *jsonschema.Resolved
}

// Registry keeps tool specs in declaration order.
type Registry struct {
	mux   sync.RWMutex
	order []*registration
	index map[string]*registration
}

// Register validates and adds a spec; names must be unique.
func (r *Registry) Register(spec *Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	resolved, err := spec.jsonSchema()
	if err != nil {
		return err
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.index[spec.Name]; ok {
		return fmt.Errorf("tool %v already registered", spec.Name)
	}
	entry := &registration{spec: spec, descriptor: spec.descriptor(), schema: resolved}
	r.index[spec.Name] = entry
	r.order = append(r.order, entry)
	return nil
}

func (r *Registry) lookup(name string) (*registration, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	entry, ok := r.index[name]
	return entry, ok
}

// Descriptors returns tool descriptors in declaration order.
func (r *Registry) Descriptors() []*Descriptor {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]*Descriptor, 0, len(r.order))
	for _, entry := range r.order {
		ret = append(ret, entry.descriptor)
	}
	return ret
}

// Names returns tool names in declaration order.
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.order))
	for _, entry := range r.order {
		ret = append(ret, entry.spec.Name)
	}
	return ret
}

// NewRegistry creates a registry with specs.
func NewRegistry(specs ...*Spec) (*Registry, error) {
	ret := &Registry{index: make(map[string]*registration)}
	for _, spec := range specs {
		if err := ret.Register(spec); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
