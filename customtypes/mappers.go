// Package customtypes holds Go types with their own GraphQL scalars and the
// type mappers that map them.
package customtypes

import (
	"time"

	"github.com/chirino/graphql-schemagen/mapper"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// TimeScalar is the scalar Time and time.Time values map to.
var TimeScalar = &schema.Scalar{
	Name: "Time",
	Desc: "An instant in time, formatted as an RFC 3339 string.",
}

// ScalarMapper maps one exact type to a fixed scalar, for input and output.
type ScalarMapper struct {
	Scalar *schema.Scalar
}

func (s ScalarMapper) Handles(m *mapper.Mapper, t typeref.Type) bool {
	return false
}

func (s ScalarMapper) OutputType(m *mapper.Mapper, t typeref.Type) (schema.Type, error) {
	return s.Scalar, nil
}

func (s ScalarMapper) InputType(m *mapper.Mapper, t typeref.Type) (schema.Type, error) {
	return s.Scalar, nil
}

// Register adds the custom type mappers to r for the classes u reflects
// them as, and returns r.
func Register(r *mapper.Registry, u *typeref.Universe) *mapper.Registry {
	return r.
		Register(u.TypeOf(ID("")), ScalarMapper{Scalar: schema.ID}).
		Register(u.TypeOf(Time{}), ScalarMapper{Scalar: TimeScalar}).
		Register(u.TypeOf(time.Time{}), ScalarMapper{Scalar: TimeScalar})
}
