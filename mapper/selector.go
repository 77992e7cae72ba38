package mapper

import (
	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// methodField builds the descriptor of an accessor. Its resolver is the one
// named by the method, else by the same named struct field, else by the
// type mapper of its type, else the default method resolver.
func (m *Mapper) methodField(c *typeref.Class, method *typeref.Method, name string) (*FieldDescriptor, error) {
	declared, err := m.env.Substitute(method.Returns)
	if err != nil {
		return nil, err
	}
	out, err := m.outputType(declared)
	if err != nil {
		return nil, err
	}

	tm := m.typeMapperFor(declared)
	resolverName := method.Resolver
	if resolverName == "" {
		if f := c.Field(name); f != nil {
			resolverName = f.Resolver
		}
	}
	if resolverName == "" {
		resolverName = declaredResolver(tm)
	}
	if resolverName == "" {
		resolverName = m.methodResolver
	}

	r, err := m.newResolver(resolverName, resolvers.Target{
		Type:   c.String(),
		Field:  name,
		GoName: method.Name,
		Method: true,
	})
	if err != nil {
		return nil, err
	}
	return &FieldDescriptor{
		Name:       name,
		Type:       declared,
		OutputType: out,
		Resolver:   m.wrap(r, out, declared, tm),
	}, nil
}

// memberField builds the descriptor of a struct field. Its resolver is the
// one named by the field, else by its type's class, else by the type mapper
// of its type, else the property resolver.
func (m *Mapper) memberField(c *typeref.Class, field *typeref.Field) (*FieldDescriptor, error) {
	declared, err := m.env.Substitute(field.Type)
	if err != nil {
		return nil, err
	}
	out, err := m.outputType(declared)
	if err != nil {
		return nil, err
	}

	tm := m.typeMapperFor(declared)
	resolverName := field.Resolver
	if resolverName == "" {
		if fc := typeref.RawClass(declared); fc != nil {
			resolverName = fc.Markers.Resolver
		}
	}
	if resolverName == "" {
		resolverName = declaredResolver(tm)
	}
	if resolverName == "" {
		resolverName = resolvers.Property
	}

	goName := field.GoName
	if goName == "" {
		goName = typeref.UpperFirst(field.Name)
	}
	r, err := m.newResolver(resolverName, resolvers.Target{
		Type:   c.String(),
		Field:  field.Name,
		GoName: goName,
	})
	if err != nil {
		return nil, err
	}
	return &FieldDescriptor{
		Name:       field.Name,
		Type:       declared,
		OutputType: out,
		Resolver:   m.wrap(r, out, declared, tm),
	}, nil
}

func (m *Mapper) newResolver(name string, target resolvers.Target) (resolvers.Resolver, error) {
	r, err := m.resolverFactory.New(name, target)
	if err != nil {
		return nil, errors.NewBuildError(err, "cannot create resolver for field %s of %s", target.Field, target.Type)
	}
	return r, nil
}

func declaredResolver(tm TypeMapper) string {
	if d, ok := tm.(ResolverDeclarer); ok {
		return d.DefaultResolver()
	}
	return ""
}

// WrapResolver adapts r to the shape of a field whose declared type is
// declared and whose output type is out.
func (m *Mapper) WrapResolver(r resolvers.Resolver, out schema.Type, declared typeref.Type) resolvers.Resolver {
	return m.wrap(r, out, declared, m.typeMapperFor(declared))
}

// wrap converts maps and collections resolved for list fields into slices.
func (m *Mapper) wrap(r resolvers.Resolver, out schema.Type, declared typeref.Type, tm TypeMapper) resolvers.Resolver {
	if !schema.IsList(out) {
		return r
	}
	if w, ok := tm.(ResolverWrapper); ok {
		return w.WrapResolver(r)
	}
	switch {
	case typeref.IsMap(declared):
		return resolvers.MapConverter(r)
	case typeref.IsList(declared):
		return resolvers.CollectionConverter(r)
	}
	return r
}
