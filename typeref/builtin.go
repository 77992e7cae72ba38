package typeref

import "reflect"

var (
	Bool    = basic("bool", reflect.Bool)
	Int     = basic("int", reflect.Int)
	Int8    = basic("int8", reflect.Int8)
	Int16   = basic("int16", reflect.Int16)
	Int32   = basic("int32", reflect.Int32)
	Int64   = basic("int64", reflect.Int64)
	Uint    = basic("uint", reflect.Uint)
	Uint8   = basic("uint8", reflect.Uint8)
	Uint16  = basic("uint16", reflect.Uint16)
	Uint32  = basic("uint32", reflect.Uint32)
	Uint64  = basic("uint64", reflect.Uint64)
	Uintptr = basic("uintptr", reflect.Uintptr)
	Float32 = basic("float32", reflect.Float32)
	Float64 = basic("float64", reflect.Float64)
	String  = basic("string", reflect.String)
)

// List is the generic class every slice and array maps to: List[E].
var List = &Class{
	Name:       "List",
	TypeParams: []*Variable{{Name: "E"}},
}

// Map is the generic class every Go map maps to: Map[K,V].
var Map = &Class{
	Name:       "Map",
	TypeParams: []*Variable{{Name: "K"}, {Name: "V"}},
}

// Entry is the generic key value pair maps are exposed as. Its fields are
// read from resolvers.MapEntry values.
var Entry = &Class{
	Name:       "Entry",
	TypeParams: []*Variable{{Name: "K"}, {Name: "V"}},
	Fields: []*Field{
		{Name: "key", GoName: "Key", Type: &Variable{Name: "K"}},
		{Name: "value", GoName: "Value", Type: &Variable{Name: "V"}},
	},
}

// Any is the class of the empty interface.
var Any = &Class{Name: "any", Shape: Opaque}

var basicsByKind = map[reflect.Kind]*Class{}

func basic(name string, kind reflect.Kind) *Class {
	c := &Class{Name: name, Shape: Basic, Basic: kind}
	basicsByKind[kind] = c
	return c
}

// BasicOf returns the predeclared class for a basic kind, or nil.
func BasicOf(kind reflect.Kind) *Class {
	return basicsByKind[kind]
}

// ListOf returns the reference []elem.
func ListOf(elem Type) *Parameterized {
	return List.Instantiate(elem)
}

// MapOf returns the reference map[key]value.
func MapOf(key, value Type) *Parameterized {
	return Map.Instantiate(key, value)
}

// IsList reports whether t is a slice or array reference.
func IsList(t Type) bool {
	return RawClass(t) == List
}

// IsMap reports whether t is a map reference.
func IsMap(t Type) bool {
	return RawClass(t) == Map
}
