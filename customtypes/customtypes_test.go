package customtypes_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/customtypes"
	"github.com/chirino/graphql-schemagen/mapper"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

func TestID(t *testing.T) {
	var id customtypes.ID
	require.NoError(t, id.UnmarshalGraphQL("abc"))
	assert.Equal(t, "abc", id.String())
	require.NoError(t, id.UnmarshalGraphQL(int32(7)))
	assert.Equal(t, customtypes.ID("7"), id)
	require.NoError(t, id.UnmarshalGraphQL(8))
	assert.Equal(t, customtypes.ID("8"), id)
	assert.EqualError(t, id.UnmarshalGraphQL(1.5), "wrong type for ID: float64")
}

func TestTime(t *testing.T) {
	instant := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	var v customtypes.Time
	require.NoError(t, v.UnmarshalGraphQL("2024-03-01T12:30:00Z"))
	assert.True(t, instant.Equal(v.Time))

	require.NoError(t, v.UnmarshalGraphQL(int(instant.Unix())))
	assert.True(t, instant.Equal(v.Time))

	require.NoError(t, v.UnmarshalGraphQL(float64(instant.Unix())))
	assert.True(t, instant.Equal(v.Time))

	require.NoError(t, v.UnmarshalGraphQL(instant))
	assert.Equal(t, instant, v.Time)

	assert.ErrorContains(t, v.UnmarshalGraphQL("yesterday"), "invalid Time")
	assert.EqualError(t, v.UnmarshalGraphQL(true), "wrong type for Time: bool")

	text, err := customtypes.Time{Time: instant}.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:30:00Z", string(text))
}

type Event struct {
	Key     customtypes.ID
	At      customtypes.Time
	Created time.Time
	Updated *time.Time
}

func TestRegister(t *testing.T) {
	u := typeref.NewUniverse()
	m, err := mapper.New(
		mapper.WithUniverse(u),
		mapper.WithTypeMappers(customtypes.Register(mapper.DefaultTypeMappers(), u)),
	)
	require.NoError(t, err)

	out, err := m.ResolveOutputType(u.TypeOf(Event{}))
	require.NoError(t, err)
	event := out.(*schema.Object)
	assert.Same(t, schema.ID, event.Fields.Get("key").Type)
	assert.Same(t, customtypes.TimeScalar, event.Fields.Get("at").Type)
	assert.Same(t, customtypes.TimeScalar, event.Fields.Get("created").Type)
	assert.Same(t, customtypes.TimeScalar, event.Fields.Get("updated").Type)

	in, err := m.ResolveInputType(u.TypeOf(Event{}))
	require.NoError(t, err)
	assert.Same(t, customtypes.TimeScalar, in.(*schema.InputObject).Fields.Get("at").Type)
}
