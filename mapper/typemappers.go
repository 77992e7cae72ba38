package mapper

import (
	"reflect"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// CollectionMapper maps slices and arrays to lists of their element type.
type CollectionMapper struct{}

func (CollectionMapper) Handles(m *Mapper, t typeref.Type) bool {
	return typeref.IsList(t)
}

func (CollectionMapper) OutputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	elem, err := typeArg(t, 0)
	if err != nil {
		return nil, err
	}
	ofType, err := m.ResolveOutputType(elem)
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

func (CollectionMapper) InputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	elem, err := typeArg(t, 0)
	if err != nil {
		return nil, err
	}
	ofType, err := m.ResolveInputType(elem)
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

// MapMapper maps map[K]V to a list of Entry_K_V objects with key and value
// fields.
type MapMapper struct{}

func (MapMapper) Handles(m *Mapper, t typeref.Type) bool {
	return typeref.IsMap(t)
}

func (MapMapper) OutputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	entry, err := entryOf(t)
	if err != nil {
		return nil, err
	}
	ofType, err := m.ResolveOutputType(entry)
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

func (MapMapper) InputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	entry, err := entryOf(t)
	if err != nil {
		return nil, err
	}
	ofType, err := m.ResolveInputType(entry)
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

func entryOf(t typeref.Type) (typeref.Type, error) {
	key, err := typeArg(t, 0)
	if err != nil {
		return nil, err
	}
	value, err := typeArg(t, 1)
	if err != nil {
		return nil, err
	}
	return typeref.Entry.Instantiate(key, value), nil
}

// EnumSetMapper maps sets of enum values, map[E]bool and map[E]struct{},
// to lists of the enum.
type EnumSetMapper struct{}

func (EnumSetMapper) Handles(m *Mapper, t typeref.Type) bool {
	p, ok := t.(*typeref.Parameterized)
	if !ok || p.Raw != typeref.Map || len(p.Args) != 2 {
		return false
	}
	key := typeref.RawClass(p.Args[0])
	if key == nil || key.Shape != typeref.Enumeration {
		return false
	}
	value := typeref.RawClass(p.Args[1])
	if value == nil {
		return false
	}
	if value.Shape == typeref.Basic && value.Basic == reflect.Bool {
		return true
	}
	return value.GoType != nil && value.GoType.Kind() == reflect.Struct && value.GoType.NumField() == 0
}

func (EnumSetMapper) OutputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	ofType, err := m.ResolveOutputType(t.(*typeref.Parameterized).Args[0])
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

func (EnumSetMapper) InputType(m *Mapper, t typeref.Type) (schema.Type, error) {
	ofType, err := m.ResolveInputType(t.(*typeref.Parameterized).Args[0])
	if err != nil {
		return nil, err
	}
	return &schema.List{OfType: ofType}, nil
}

func (EnumSetMapper) WrapResolver(r resolvers.Resolver) resolvers.Resolver {
	return resolvers.SetConverter(r)
}

func typeArg(t typeref.Type, i int) (typeref.Type, error) {
	p, ok := t.(*typeref.Parameterized)
	if !ok || i >= len(p.Args) {
		return nil, errors.NewNotMappableError(t.String())
	}
	return p.Args[i], nil
}
