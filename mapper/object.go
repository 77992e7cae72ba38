package mapper

import (
	"github.com/chirino/graphql-schemagen/internal/linkedmap"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// FieldDescriptor describes one field while its object is being built.
type FieldDescriptor struct {
	Name string
	// Type is the declared type of the field.
	Type typeref.Type
	// OutputType is resolved from Type when left nil.
	OutputType schema.Type
	Args       schema.InputValueList
	Resolver   resolvers.Resolver
	Ignored    bool
}

type fieldSet = linkedmap.LinkedMap[string, *FieldDescriptor]

// buildObject builds the object named name for the class c referenced by ref.
// The object handle is cached before any field is resolved so that fields
// referring back to it, directly or through other types, get the same handle.
func (m *Mapper) buildObject(name string, ref typeref.Type, c *typeref.Class) (schema.Type, error) {
	obj := &schema.Object{Name: name}
	m.output.reserve(name, obj)

	ctx, finish := m.tracer.TraceType(m.ctx, name)
	parent := m.ctx
	m.ctx = ctx
	fields, err := m.collectFields(ref, c)
	m.ctx = parent
	finish(err)
	if err != nil {
		m.output.remove(name)
		return nil, err
	}

	for _, f := range fields {
		obj.Fields = append(obj.Fields, &schema.Field{Name: f.Name, Type: f.OutputType, Args: f.Args})
		if f.Resolver != nil {
			m.resolvers.Set(name, f.Name, f.Resolver)
		}
	}
	if c.Markers.Node {
		obj.Interfaces = append(obj.Interfaces, m.node)
		obj.InterfaceNames = append(obj.InterfaceNames, m.node.Name)
		m.node.PossibleTypes = append(m.node.PossibleTypes, obj)
	}
	m.output.complete(name)
	m.logger.Debug("built object type", "type", name, "fields", len(obj.Fields))
	return obj, nil
}

func (m *Mapper) collectFields(ref typeref.Type, c *typeref.Class) ([]*FieldDescriptor, error) {
	if p, ok := ref.(*typeref.Parameterized); ok {
		if err := m.env.Push(p); err != nil {
			return nil, err
		}
		defer m.env.Pop()
	}
	fields := linkedmap.CreateLinkedMap[string, *FieldDescriptor](len(c.Fields) + len(c.Methods))
	w := &walk{fields: fields, ignored: map[string]bool{}, visited: map[*typeref.Class]bool{}}
	if err := m.collectLevel(c, w); err != nil {
		return nil, err
	}
	return fields.Values(), nil
}

// walk is the state of one supertype walk. Names found or ignored at a
// shallower level shadow deeper ones.
type walk struct {
	fields  *fieldSet
	ignored map[string]bool
	visited map[*typeref.Class]bool
}

func (w *walk) add(descriptors []*FieldDescriptor) {
	for _, d := range descriptors {
		if d.Ignored || w.ignored[d.Name] || w.fields.Has(d.Name) {
			continue
		}
		w.fields.Set(d.Name, d)
	}
}

func (w *walk) shadowed(name string) bool {
	return w.ignored[name] || w.fields.Has(name)
}

func (m *Mapper) collectLevel(c *typeref.Class, w *walk) error {
	if w.visited[c] || m.isRoot(c) {
		return nil
	}
	w.visited[c] = true

	level, ignored, err := m.discoverFields(c, w.shadowed)
	if err != nil {
		return err
	}
	w.add(level)
	for name := range ignored {
		w.ignored[name] = true
	}

	if c.Markers.QueryFactory != "" {
		queries, err := m.queryFields(c)
		if err != nil {
			return err
		}
		w.add(queries)
	}

	for _, super := range c.Embedded {
		if err := m.collectSuper(super, w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapper) collectSuper(super typeref.Type, w *walk) error {
	switch s := super.(type) {
	case *typeref.Class:
		return m.collectLevel(s, w)
	case *typeref.Parameterized:
		if err := m.env.Push(s); err != nil {
			return err
		}
		defer m.env.Pop()
		return m.collectLevel(s.Raw, w)
	}
	return nil
}
