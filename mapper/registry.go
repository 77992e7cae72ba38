package mapper

import (
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// TypeMapper takes over the mapping of the types it handles, bypassing
// structural discovery.
type TypeMapper interface {
	Handles(m *Mapper, t typeref.Type) bool
	OutputType(m *Mapper, t typeref.Type) (schema.Type, error)
	InputType(m *Mapper, t typeref.Type) (schema.Type, error)
}

// ResolverDeclarer is implemented by type mappers that declare the resolver
// used for fields of the types they handle.
type ResolverDeclarer interface {
	DefaultResolver() string
}

// ResolverWrapper is implemented by type mappers that adapt the values
// resolved for fields of the types they handle.
type ResolverWrapper interface {
	WrapResolver(r resolvers.Resolver) resolvers.Resolver
}

// Registry holds type mappers registered for an exact type and type mappers
// matched by predicate. An exact registration always wins; predicate
// mappers are tried in registration order.
type Registry struct {
	exact      map[string]TypeMapper
	predicates []TypeMapper
}

func NewRegistry() *Registry {
	return &Registry{exact: map[string]TypeMapper{}}
}

// DefaultTypeMappers returns a registry holding the collection, map and
// enum set mappers.
func DefaultTypeMappers() *Registry {
	r := NewRegistry()
	r.Register(typeref.List, CollectionMapper{})
	r.Register(typeref.Map, MapMapper{})
	r.Add(EnumSetMapper{})
	return r
}

// Register maps t, and only t, with tm.
func (r *Registry) Register(t typeref.Type, tm TypeMapper) *Registry {
	r.exact[typeref.Key(t)] = tm
	return r
}

// Add appends a predicate type mapper.
func (r *Registry) Add(tm TypeMapper) *Registry {
	r.predicates = append(r.predicates, tm)
	return r
}

// Find returns the type mapper for t, or nil.
func (r *Registry) Find(m *Mapper, t typeref.Type) TypeMapper {
	if _, ok := t.(*typeref.Variable); ok {
		return nil
	}
	if tm := r.exact[typeref.Key(t)]; tm != nil {
		return tm
	}
	for _, tm := range r.predicates {
		if tm.Handles(m, t) {
			return tm
		}
	}
	return nil
}

// typeMapperFor returns the type mapper of t or of its raw class.
func (m *Mapper) typeMapperFor(t typeref.Type) TypeMapper {
	if tm := m.typeMappers.Find(m, t); tm != nil {
		return tm
	}
	if p, ok := t.(*typeref.Parameterized); ok {
		return m.typeMappers.Find(m, p.Raw)
	}
	return nil
}
