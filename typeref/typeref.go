// Package typeref describes native Go types in a form the schema mapper can walk.
//
// A Type is one of four variants: a plain *Class, a *Parameterized type with
// ordered type arguments, a type *Variable, or a *Wildcard. Classes are produced
// by reflection (Universe.Of), by explicit declaration (NewClass) or by static
// analysis of Go sources (package typeref/gotypes).
package typeref

import (
	"reflect"
	"strings"
)

type Kind int

const (
	ClassKind Kind = iota
	ParameterizedKind
	VariableKind
	WildcardKind
)

func (k Kind) String() string {
	switch k {
	case ClassKind:
		return "class"
	case ParameterizedKind:
		return "parameterized"
	case VariableKind:
		return "variable"
	case WildcardKind:
		return "wildcard"
	}
	return "unknown"
}

// Type is a read-only reference to a native type.
type Type interface {
	Kind() Kind
	String() string
}

// Shape classifies how a class is structured.
type Shape int

const (
	// Struct classes expose fields and accessor methods.
	Struct Shape = iota
	// Basic classes are backed by a bool, number or string kind.
	Basic
	// Enumeration classes have a fixed set of named constants.
	Enumeration
	// Opaque classes have no schema representation: funcs, chans, any.
	Opaque
)

// Markers hold the type level metadata a class was declared with.
type Markers struct {
	// Name overrides the simple name used by naming strategies.
	Name string
	// Node is set when the type implements the node capability.
	Node bool
	// QueryFactory is the key of the injected query provider for query bearing types.
	QueryFactory string
	// Resolver names the resolver used for fields of this type.
	Resolver string
	// Root stops the supertype walk at this class.
	Root bool
}

type Class struct {
	Name    string
	PkgPath string
	Shape   Shape
	Basic   reflect.Kind

	// TypeParams are the declared type parameters of a generic class.
	TypeParams []*Variable
	// InstanceArgs are the type argument names of an instantiated generic
	// type seen through reflection, where the generic declaration is not available.
	InstanceArgs []string

	// Embedded are the supertypes of the class, in declaration order.
	Embedded   []Type
	Fields     []*Field
	Methods    []*Method
	EnumValues []string
	Markers    Markers

	// GoType is the reflected type, nil for statically loaded or declared classes.
	GoType reflect.Type
}

// Field is a directly declared struct member.
type Field struct {
	// Name is the schema facing name.
	Name string
	// GoName is the name of the struct field used by property resolvers.
	GoName    string
	Type      Type
	Static    bool
	Synthetic bool
	Ignore    bool
	Resolver  string
}

type Method struct {
	Name         string
	Params       []Type
	TakesContext bool
	Returns      Type
	ReturnsError bool
	Ignore       bool
	Resolver     string
}

type Parameterized struct {
	Raw  *Class
	Args []Type
}

type Variable struct {
	Name string
}

type Wildcard struct {
	Upper []Type
	Lower []Type
}

func (*Class) Kind() Kind         { return ClassKind }
func (*Parameterized) Kind() Kind { return ParameterizedKind }
func (*Variable) Kind() Kind      { return VariableKind }
func (*Wildcard) Kind() Kind      { return WildcardKind }

func (c *Class) String() string {
	name := c.Name
	if len(c.InstanceArgs) > 0 {
		name += "[" + strings.Join(c.InstanceArgs, ",") + "]"
	}
	if c.PkgPath == "" {
		return name
	}
	return c.PkgPath + "." + name
}

func (p *Parameterized) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}
	return p.Raw.String() + "[" + strings.Join(args, ",") + "]"
}

func (v *Variable) String() string { return v.Name }

func (w *Wildcard) String() string {
	switch {
	case len(w.Lower) > 0:
		return "? super " + w.Lower[0].String()
	case len(w.Upper) > 0:
		return "? extends " + w.Upper[0].String()
	}
	return "?"
}

// Key returns a string that uniquely identifies t. It is used to register
// type mappers by exact type.
func Key(t Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// RawClass returns the class behind a class or parameterized reference.
func RawClass(t Type) *Class {
	switch t := t.(type) {
	case *Class:
		return t
	case *Parameterized:
		return t.Raw
	}
	return nil
}

// IsGeneric reports whether the class declares type parameters.
func (c *Class) IsGeneric() bool {
	return len(c.TypeParams) > 0
}

// Field returns the declared field with the given schema name.
func (c *Class) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (c *Class) Method(name string) *Method {
	for _, m := range c.Methods {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Instantiate returns the parameterized reference c[args...].
func (c *Class) Instantiate(args ...Type) *Parameterized {
	return &Parameterized{Raw: c, Args: args}
}

// Var returns the declared type parameter with the given name.
func (c *Class) Var(name string) *Variable {
	for _, v := range c.TypeParams {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// Accessor reports whether the method takes no arguments and returns a value.
func (m *Method) Accessor() bool {
	return len(m.Params) == 0 && m.Returns != nil
}

// Contains reports whether t refers to a type variable anywhere.
func Contains(t Type) bool {
	switch t := t.(type) {
	case *Variable:
		return true
	case *Parameterized:
		for _, a := range t.Args {
			if Contains(a) {
				return true
			}
		}
	case *Wildcard:
		for _, b := range t.Upper {
			if Contains(b) {
				return true
			}
		}
		for _, b := range t.Lower {
			if Contains(b) {
				return true
			}
		}
	}
	return false
}
