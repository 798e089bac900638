package interpolation

import (
	"fmt"
	"reflect"
	"sync"
)

// Interpolatable is implemented by types that supply their own strategy. The
// dispatcher resolving the value is passed in so nested values can be
// delegated back to it.
type Interpolatable interface {
	Interpolation(d *Dynamic) Interpolation
}

// Registry maps concrete types to custom strategies for types that cannot
// implement Interpolatable themselves. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	strategies map[reflect.Type]Interpolation
}

// DefaultRegistry is consulted by dispatchers built without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[reflect.Type]Interpolation)}
}

// Register binds the dynamic type of sample to strategy.
func (r *Registry) Register(sample any, strategy Interpolation) error {
	if sample == nil {
		return fmt.Errorf("register interpolation: sample value is nil")
	}
	return r.register(reflect.TypeOf(sample), strategy)
}

// RegisterType binds T to strategy.
func RegisterType[T any](r *Registry, strategy Interpolation) error {
	return r.register(reflect.TypeFor[T](), strategy)
}

func (r *Registry) register(t reflect.Type, strategy Interpolation) error {
	if strategy == nil {
		return fmt.Errorf("register interpolation for %s: strategy is nil", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[t]; exists {
		return fmt.Errorf("register interpolation for %s: already registered", t)
	}
	r.strategies[t] = strategy
	return nil
}

// Unregister removes the strategy bound to the dynamic type of sample.
func (r *Registry) Unregister(sample any) {
	if sample == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.strategies, reflect.TypeOf(sample))
}

// Lookup returns the strategy registered for the dynamic type of value.
func (r *Registry) Lookup(value any) (Interpolation, bool) {
	if r == nil || value == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	strategy, ok := r.strategies[reflect.TypeOf(value)]
	return strategy, ok
}
