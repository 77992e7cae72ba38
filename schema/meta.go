package schema

// The scalars every schema has. Long is a custom scalar and is only part of a
// schema when a type maps to it.
var (
	Int     = &Scalar{Name: "Int", Desc: "The `Int` scalar type represents non-fractional signed whole numeric values."}
	Float   = &Scalar{Name: "Float", Desc: "The `Float` scalar type represents signed double-precision fractional values."}
	String  = &Scalar{Name: "String", Desc: "The `String` scalar type represents textual data."}
	Boolean = &Scalar{Name: "Boolean", Desc: "The `Boolean` scalar type represents `true` or `false`."}
	ID      = &Scalar{Name: "ID", Desc: "The `ID` scalar type represents a unique identifier."}

	Long = &Scalar{Name: "Long", Desc: "64 bit signed whole numeric values."}
)

var BuiltIn = []*Scalar{Int, Float, String, Boolean, ID}

func isBuiltIn(t NamedType) bool {
	for _, b := range BuiltIn {
		if t == NamedType(b) {
			return true
		}
	}
	return false
}
