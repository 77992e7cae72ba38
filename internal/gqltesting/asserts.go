package gqltesting

import (
	"context"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
)

// AssertSchema compares the SDL of s with expected, ignoring indentation
// and blank lines.
func AssertSchema(t *testing.T, expected string, s *schema.Schema) {
	AssertSDL(t, expected, s.String())
}

// AssertSDL compares two SDL documents, ignoring indentation and blank lines.
func AssertSDL(t *testing.T, expected string, actual string) {
	assert.Equal(t, normalize(expected), normalize(actual))
}

// AssertField asserts that the object named typeName has a field named
// field of type expected, written as in SDL.
func AssertField(t *testing.T, s *schema.Schema, typeName string, field string, expected string) {
	obj, ok := s.Types[typeName].(*schema.Object)
	require.True(t, ok, "%s is not an object", typeName)
	f := obj.Fields.Get(field)
	require.NotNil(t, f, "%s has no field %s", typeName, field)
	assert.Equal(t, expected, f.Type.String())
}

// AssertResolve resolves field of the parent value of type parentType with
// resolver and compares the JSON encoding of the result with expected.
func AssertResolve(t *testing.T, resolver resolvers.Resolver, parentType schema.Type, parent interface{}, field string, args map[string]interface{}, expected string) {
	actual, err := Resolve(resolver, parentType, parent, field, args)
	require.NoError(t, err)
	assert.Equal(t, expected, jsonMarshal(t, actual))
}

// Resolve resolves field of the parent value and returns the resolved value.
func Resolve(resolver resolvers.Resolver, parentType schema.Type, parent interface{}, field string, args map[string]interface{}) (interface{}, error) {
	request := &resolvers.ResolveRequest{
		Context:    context.Background(),
		ParentType: parentType,
		Parent:     reflect.ValueOf(parent),
		Field:      &schema.Field{Name: field},
		Args:       args,
	}
	if obj, ok := parentType.(*schema.Object); ok {
		if f := obj.Fields.Get(field); f != nil {
			request.Field = f
		}
	}
	resolution := resolver.Resolve(request, nil)
	if resolution == nil {
		return nil, nil
	}
	value, err := resolution()
	if err != nil || !value.IsValid() {
		return nil, err
	}
	return value.Interface(), nil
}

func jsonMarshal(t *testing.T, value interface{}) string {
	data, err := json.Marshal(value)
	assert.NoError(t, err)
	return string(data)
}

func normalize(sdl string) string {
	var lines []string
	for _, line := range strings.Split(sdl, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
