package customtypes

import (
	"strconv"

	"github.com/chirino/graphql-schemagen/errors"
)

// ID represents GraphQL's "ID" scalar type. Fields of this type map to ID
// instead of String.
type ID string

func (id *ID) UnmarshalGraphQL(input interface{}) error {
	switch input := input.(type) {
	case string:
		*id = ID(input)
	case int32:
		*id = ID(strconv.Itoa(int(input)))
	case int:
		*id = ID(strconv.Itoa(input))
	default:
		return errors.Errorf("wrong type for ID: %T", input)
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}
