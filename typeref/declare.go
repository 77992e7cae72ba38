package typeref

import "reflect"

// NewClass declares a struct class. Type parameters are declared by name and
// can be referenced from fields with Class.Var.
func NewClass(pkgPath, name string, typeParams ...string) *Class {
	c := &Class{Name: name, PkgPath: pkgPath, Shape: Struct}
	for _, p := range typeParams {
		c.TypeParams = append(c.TypeParams, &Variable{Name: p})
	}
	return c
}

// NewEnum declares an enumeration class with the given constant names.
func NewEnum(pkgPath, name string, values ...string) *Class {
	return &Class{Name: name, PkgPath: pkgPath, Shape: Enumeration, Basic: reflect.String, EnumValues: values}
}

type FieldOption func(f *Field)

func Ignored() FieldOption {
	return func(f *Field) { f.Ignore = true }
}

func WithResolver(name string) FieldOption {
	return func(f *Field) { f.Resolver = name }
}

func GoName(name string) FieldOption {
	return func(f *Field) { f.GoName = name }
}

func Static() FieldOption {
	return func(f *Field) { f.Static = true }
}

// AddField appends a field named name. The Go field name defaults to name
// with an upper case first letter.
func (c *Class) AddField(name string, t Type, options ...FieldOption) *Class {
	f := &Field{Name: name, GoName: UpperFirst(name), Type: t}
	for _, o := range options {
		o(f)
	}
	c.Fields = append(c.Fields, f)
	return c
}

type MethodOption func(m *Method)

func IgnoredMethod() MethodOption {
	return func(m *Method) { m.Ignore = true }
}

func MethodResolver(name string) MethodOption {
	return func(m *Method) { m.Resolver = name }
}

func ReturnsError() MethodOption {
	return func(m *Method) { m.ReturnsError = true }
}

func Params(params ...Type) MethodOption {
	return func(m *Method) { m.Params = params }
}

func (c *Class) AddMethod(name string, returns Type, options ...MethodOption) *Class {
	m := &Method{Name: name, Returns: returns}
	for _, o := range options {
		o(m)
	}
	c.Methods = append(c.Methods, m)
	return c
}

// Extend adds t to the embedded supertypes of c.
func (c *Class) Extend(t Type) *Class {
	c.Embedded = append(c.Embedded, t)
	return c
}

func (c *Class) Mark(markers Markers) *Class {
	c.Markers = markers
	return c
}

// LowerFirst lower cases the first letter of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}

func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
