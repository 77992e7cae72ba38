package schema

import (
	"bytes"
	"io"
	"sort"

	"github.com/chirino/graphql-schemagen/errors"
)

// Schema represents a GraphQL service's collective type system capabilities.
// A schema is defined in terms of the types it supports as well as the root
// operation types for each kind of operation: `query`, `mutation`, and `subscription`.
//
// For a more formal definition, read the relevant section in the specification:
//
// http://facebook.github.io/graphql/draft/#sec-Schema
type Schema struct {
	// EntryPoints determines the place in the type system where `query`, `mutation`, and
	// `subscription` operations begin.
	//
	// http://facebook.github.io/graphql/draft/#sec-Root-Operation-Types
	EntryPoints map[OperationType]NamedType

	// Types are the fundamental unit of any GraphQL schema.
	// There are six kinds of named types, and two wrapping types.
	//
	// http://facebook.github.io/graphql/draft/#sec-Types
	Types map[string]NamedType
}

type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

type Formatter interface {
	WriteSchemaFormat(out io.StringWriter)
}

func FormatterToString(s Formatter) string {
	buf := &bytes.Buffer{}
	s.WriteSchemaFormat(buf)
	return buf.String()
}

type Type interface {
	Kind() string
	String() string
	AddIfMissing(to *Schema)
	Formatter
}

type List struct {
	OfType Type
}

type NonNull struct {
	OfType Type
}

// TypeName is a forward reference to a named type that is resolved when the
// schema is assembled.
type TypeName struct {
	Name string
}

// Resolve a named type in the schema by its name.
func (s *Schema) Resolve(name string) Type {
	return s.Types[name]
}

// NamedType represents a type with a name.
//
// http://facebook.github.io/graphql/draft/#NamedType
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

// Scalar types represent primitive leaf values (e.g. a string or an integer) in a GraphQL type
// system.
//
// http://facebook.github.io/graphql/draft/#sec-Scalars
type Scalar struct {
	Name string
	Desc string
}

// Object types represent a list of named fields, each of which yield a value of a specific type.
//
// http://facebook.github.io/graphql/draft/#sec-Objects
type Object struct {
	Name       string
	Interfaces InterfaceList
	Fields     FieldList `json:"fields"`
	Desc       string

	InterfaceNames []string
}

// Interface types represent a list of named fields and their arguments.
//
// http://facebook.github.io/graphql/draft/#sec-Interfaces
type Interface struct {
	Name          string
	PossibleTypes []*Object
	Fields        FieldList
	Desc          string
}

type InterfaceList []*Interface

func (l InterfaceList) Get(name string) *Interface {
	for _, d := range l {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// Enum types describe a set of possible values.
//
// http://facebook.github.io/graphql/draft/#sec-Enums
type Enum struct {
	Name   string
	Values []*EnumValue
	Desc   string
}

type EnumValue struct {
	Name string
	Desc string
}

// InputObject types define a set of input fields; the input fields are either scalars, enums, or
// other input objects.
//
// http://facebook.github.io/graphql/draft/#sec-Input-Objects
type InputObject struct {
	Name   string
	Desc   string
	Fields InputValueList
}

// FieldList is a list of an Object's Fields.
type FieldList []*Field

// Get returns the field with the given name, or nil.
func (l FieldList) Get(name string) *Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (l FieldList) Names() []string {
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.Name
	}
	return names
}

type Field struct {
	Name string         `json:"name"`
	Args InputValueList `json:"args"`
	Type Type
	Desc string `json:"desc"`
}

// InputValue is an argument of a field or a field of an input object.
type InputValue struct {
	Name string
	Type Type
	Desc string
}

type InputValueList []*InputValue

func (l InputValueList) Get(name string) *InputValue {
	for _, v := range l {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (l InputValueList) Names() []string {
	names := make([]string, len(l))
	for i, v := range l {
		names[i] = v.Name
	}
	return names
}

func (*List) Kind() string         { return "LIST" }
func (*NonNull) Kind() string      { return "NON_NULL" }
func (*TypeName) Kind() string     { return "TYPE_NAME" }
func (*Scalar) Kind() string       { return "SCALAR" }
func (*Object) Kind() string       { return "OBJECT" }
func (*Interface) Kind() string    { return "INTERFACE" }
func (*Enum) Kind() string         { return "ENUM" }
func (*InputObject) Kind() string  { return "INPUT_OBJECT" }
func (*InputValue) Kind() string   { return "INPUT_FIELD_DEFINITION" }
func (*Field) Kind() string        { return "FIELD_DEFINITION" }
func (t *Field) String() string    { return t.Name }
func (t *List) String() string     { return "[" + t.OfType.String() + "]" }
func (t *NonNull) String() string  { return t.OfType.String() + "!" }
func (t *TypeName) String() string { return t.Name }
func (t *Scalar) String() string   { return t.Name }
func (t *Object) String() string   { return t.Name }
func (t *Interface) String() string   { return t.Name }
func (t *Enum) String() string        { return t.Name }
func (t *InputObject) String() string { return t.Name }
func (t *InputValue) String() string  { return t.Name }

func (t *Scalar) TypeName() string      { return t.Name }
func (t *Object) TypeName() string      { return t.Name }
func (t *Interface) TypeName() string   { return t.Name }
func (t *Enum) TypeName() string        { return t.Name }
func (t *InputObject) TypeName() string { return t.Name }

func (t *Scalar) Description() string      { return t.Desc }
func (t *Object) Description() string      { return t.Desc }
func (t *Interface) Description() string   { return t.Desc }
func (t *Enum) Description() string        { return t.Desc }
func (t *InputObject) Description() string { return t.Desc }

// New initializes an instance of Schema seeded with the built in scalars.
func New() *Schema {
	s := &Schema{
		Types:       make(map[string]NamedType),
		EntryPoints: make(map[OperationType]NamedType),
	}
	for _, t := range BuiltIn {
		s.Types[t.Name] = t
	}
	return s
}

// ResolveTypes replaces every forward TypeName reference with the named type
// it refers to and links objects to the interfaces they implement.
func (s *Schema) ResolveTypes() error {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := resolveNamedType(s, s.Types[name]); err != nil {
			return err
		}
	}
	for _, name := range names {
		o, ok := s.Types[name].(*Object)
		if !ok {
			continue
		}
		for _, intfName := range o.InterfaceNames {
			if o.Interfaces.Get(intfName) != nil {
				continue
			}
			intf, ok := s.Types[intfName].(*Interface)
			if !ok {
				return errors.Errorf("%q is not an interface", intfName)
			}
			o.Interfaces = append(o.Interfaces, intf)
			intf.PossibleTypes = append(intf.PossibleTypes, o)
		}
	}
	return nil
}

func resolveNamedType(s *Schema, t NamedType) error {
	switch t := t.(type) {
	case *Object:
		return resolveFields(s, t.Fields)
	case *Interface:
		return resolveFields(s, t.Fields)
	case *InputObject:
		return resolveInputValues(s, t.Fields)
	}
	return nil
}

func resolveFields(s *Schema, fields FieldList) error {
	for _, f := range fields {
		t, err := ResolveType(f.Type, s.Resolve)
		if err != nil {
			return err
		}
		f.Type = t
		if err := resolveInputValues(s, f.Args); err != nil {
			return err
		}
	}
	return nil
}

func resolveInputValues(s *Schema, values InputValueList) error {
	for _, v := range values {
		t, err := ResolveType(v.Type, s.Resolve)
		if err != nil {
			return err
		}
		v.Type = t
	}
	return nil
}
