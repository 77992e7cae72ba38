package errors_test

import (
	"fmt"
	"testing"

	pe "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/errors"
)

func TestSchemaError(t *testing.T) {
	err := errors.Errorf("cannot map %s", "field").WithType("example.Person")
	assert.EqualError(t, err, "cannot map field (type example.Person)")

	wrapped := errors.New("outer").WithCause(pe.New("inner"))
	assert.EqualError(t, wrapped, "outer: inner")
	assert.Equal(t, "inner", pe.Cause(wrapped).Error())

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "cannot map field (type example.Person)\n stack: ")
	assert.Contains(t, verbose, "errors_test.TestSchemaError")
	assert.Equal(t, `"outer: inner"`, fmt.Sprintf("%q", wrapped))
}

func TestPredicates(t *testing.T) {
	notMappable := errors.NewNotMappableError("func()")
	assert.EqualError(t, notMappable, "type cannot be mapped to a schema type (type func())")
	assert.True(t, errors.IsNotMappable(notMappable))
	assert.False(t, errors.IsBuild(notMappable))

	build := errors.NewBuildError(notMappable, "cannot build %s", "Query")
	assert.True(t, errors.IsBuild(build))
	assert.True(t, errors.IsNotMappable(build))
	assert.EqualError(t, build, "cannot build Query: type cannot be mapped to a schema type (type func())")

	resolution := errors.NewResolutionError("T")
	assert.True(t, errors.IsResolution(errors.Wrap(resolution, "resolving Box")))
	assert.Equal(t, "T", resolution.Variable)

	assert.True(t, errors.IsInternalInconsistency(errors.NewInternalInconsistencyError("%d frames", 2)))
	assert.False(t, errors.IsInternalInconsistency(pe.New("other")))
}

func TestMulti(t *testing.T) {
	assert.Nil(t, errors.Multi(nil, nil))

	single := errors.New("one")
	assert.Same(t, single, errors.Multi(nil, single))

	err := errors.Multi(errors.New("one"), errors.Multi(errors.New("two"), errors.New("three")))
	require.Error(t, err)
	assert.Equal(t, "3 errors occurred:\n\t * one\n\t * two\n\t * three\n\n", err.Error())
	assert.Len(t, err.(interface{ Errors() []error }).Errors(), 3)
}
