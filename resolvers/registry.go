package resolvers

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

const (
	// Method is the name of the resolver that calls accessor methods.
	Method = "method"
	// Property is the name of the resolver that reads struct fields.
	Property = "property"
)

// Target describes the struct member a resolver is created for.
type Target struct {
	// Type is the declaring type.
	Type string
	// Field is the schema field name.
	Field string
	// GoName is the Go field or method name.
	GoName string
	Method bool
}

type Constructor func(target Target) (Resolver, error)

// Registry creates resolvers by name.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns a registry holding the method and property resolvers.
func NewRegistry() *Registry {
	r := &Registry{constructors: map[string]Constructor{}}
	r.Register(Method, func(target Target) (Resolver, error) {
		return MethodResolver{Method: target.GoName}, nil
	})
	r.Register(Property, func(target Target) (Resolver, error) {
		return PropertyResolver{Field: target.GoName}, nil
	})
	return r
}

func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = c
}

// RegisterResolver registers a resolver shared by every target.
func (r *Registry) RegisterResolver(name string, resolver Resolver) {
	r.Register(name, func(Target) (Resolver, error) {
		return resolver, nil
	})
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) New(name string, target Target) (Resolver, error) {
	r.mu.RLock()
	c := r.constructors[name]
	r.mu.RUnlock()
	if c == nil {
		return nil, errors.Errorf("no resolver named %q is registered", name)
	}
	resolver, err := c(target)
	if err != nil {
		return nil, errors.Wrapf(err, "creating resolver %q for %s.%s", name, target.Type, target.Field)
	}
	return resolver, nil
}
