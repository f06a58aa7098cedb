// Package faker provides the registry of fake-value operations used to
// fill generated records. Operations are looked up by a (group, func) pair.
package faker

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownOperation is matched by errors.Is for every UnknownOperationError.
var ErrUnknownOperation = errors.New("unknown provider operation")

// UnknownOperationError is returned when no operation is registered
// under the requested key.
type UnknownOperationError struct {
	Group string
	Func  string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown provider operation %s.%s", e.Group, e.Func)
}

// Is makes UnknownOperationError match ErrUnknownOperation.
func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}

// Key identifies an operation inside the registry.
type Key struct {
	Group string `json:"groupName"`
	Func  string `json:"func"`
}

func (k Key) String() string {
	return k.Group + "." + k.Func
}

// Operation produces one fresh value per call.
type Operation func() any

// Provider is the read side of the registry consumed by the generator.
type Provider interface {
	Invoke(group, fn string) (any, error)
}

// Registry maps (group, func) keys to operations.
type Registry struct {
	mu  sync.RWMutex
	ops map[Key]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[Key]Operation)}
}

// Register adds or replaces the operation for group.fn.
func (r *Registry) Register(group, fn string, op Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[Key{Group: group, Func: fn}] = op
}

// Has reports whether group.fn is registered.
func (r *Registry) Has(group, fn string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ops[Key{Group: group, Func: fn}]
	return ok
}

// Invoke runs the operation registered under group.fn.
func (r *Registry) Invoke(group, fn string) (any, error) {
	r.mu.RLock()
	op, ok := r.ops[Key{Group: group, Func: fn}]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownOperationError{Group: group, Func: fn}
	}
	return op(), nil
}

// Keys returns all registered keys sorted by group, then func.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.ops))
	for k := range r.ops {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Group != keys[j].Group {
			return keys[i].Group < keys[j].Group
		}
		return keys[i].Func < keys[j].Func
	})
	return keys
}

// Groups returns the sorted func names available in every group.
func (r *Registry) Groups() map[string][]string {
	groups := make(map[string][]string)
	for _, k := range r.Keys() {
		groups[k.Group] = append(groups[k.Group], k.Func)
	}
	return groups
}
