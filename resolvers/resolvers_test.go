package resolvers_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
)

type Meta struct {
	Created int64
}

type Book struct {
	*Meta
	Title   string
	Authors []string
	Ratings map[string]int
	Shelves [2]string
}

func (b *Book) GetTitle() string {
	return b.Title
}

type SearchArgs struct {
	Query string `graphql:"q"`
	Limit int
}

func (b *Book) Search(ctx context.Context, args SearchArgs) ([]string, error) {
	if ctx == nil {
		return nil, errors.New("no context")
	}
	if args.Limit < 0 {
		return nil, errors.New("negative limit")
	}
	return []string{args.Query, b.Title}, nil
}

func resolve(t *testing.T, r resolvers.Resolver, parent interface{}, args map[string]interface{}) (interface{}, error) {
	t.Helper()
	resolution := r.Resolve(&resolvers.ResolveRequest{
		Context:    context.Background(),
		ParentType: &schema.Object{Name: "Book"},
		Parent:     reflect.ValueOf(parent),
		Field:      &schema.Field{Name: "field"},
		Args:       args,
	}, nil)
	if resolution == nil {
		return nil, nil
	}
	value, err := resolution()
	if err != nil || !value.IsValid() {
		return nil, err
	}
	return value.Interface(), nil
}

func TestPropertyResolver(t *testing.T) {
	book := &Book{Meta: &Meta{Created: 7}, Title: "Dune"}

	value, err := resolve(t, resolvers.PropertyResolver{Field: "Title"}, book, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", value)

	value, err = resolve(t, resolvers.PropertyResolver{Field: "Created"}, book, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), value)

	// promoted through a nil embedded pointer
	value, err = resolve(t, resolvers.PropertyResolver{Field: "Created"}, &Book{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), value)

	value, err = resolve(t, resolvers.PropertyResolver{Field: "title"}, map[string]string{"title": "Emma"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Emma", value)

	assert.Nil(t, resolvers.PropertyResolver{Field: "Missing"}.Resolve(&resolvers.ResolveRequest{Parent: reflect.ValueOf(book)}, nil))
	assert.Nil(t, resolvers.PropertyResolver{Field: "Title"}.Resolve(&resolvers.ResolveRequest{Parent: reflect.ValueOf((*Book)(nil))}, nil))
}

func TestMethodResolver(t *testing.T) {
	value, err := resolve(t, resolvers.MethodResolver{Method: "GetTitle"}, Book{Title: "Dune"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", value)

	value, err = resolve(t, resolvers.MethodResolver{Method: "Search"}, &Book{Title: "Dune"}, map[string]interface{}{"q": "sand", "limit": "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sand", "Dune"}, value)

	_, err = resolve(t, resolvers.MethodResolver{Method: "Search"}, &Book{}, map[string]interface{}{"limit": -1})
	assert.EqualError(t, err, "negative limit")

	_, err = resolve(t, resolvers.MethodResolver{Method: "Search"}, &Book{}, map[string]interface{}{"limit": map[string]interface{}{"max": 1}})
	assert.ErrorContains(t, err, "invalid arguments for resolvers_test.SearchArgs")

	assert.Nil(t, resolvers.MethodResolver{Method: "Missing"}.Resolve(&resolvers.ResolveRequest{Parent: reflect.ValueOf(&Book{})}, nil))
}

func TestBoundMethodResolver(t *testing.T) {
	book := &Book{Title: "Dune"}
	r := resolvers.BoundMethodResolver{Receiver: reflect.ValueOf(book), Method: "GetTitle"}
	value, err := resolve(t, r, "ignored parent", nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", value)
}

func TestMapConverter(t *testing.T) {
	r := resolvers.MapConverter(resolvers.PropertyResolver{Field: "Ratings"})

	value, err := resolve(t, r, &Book{Ratings: map[string]int{"b": 2, "a": 1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []resolvers.MapEntry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, value)

	value, err = resolve(t, r, &Book{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []resolvers.MapEntry{}, value)
}

func TestSetConverter(t *testing.T) {
	r := resolvers.SetConverter(resolvers.PropertyResolver{Field: "flags"})
	value, err := resolve(t, r, map[string]map[int]bool{"flags": {3: true, 1: true, 2: false}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 3}, value)

	value, err = resolve(t, resolvers.SetConverter(resolvers.PropertyResolver{Field: "set"}), map[string]map[string]struct{}{"set": {"y": {}, "x": {}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"x", "y"}, value)
}

func TestCollectionConverter(t *testing.T) {
	value, err := resolve(t, resolvers.CollectionConverter(resolvers.PropertyResolver{Field: "Authors"}), &Book{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, value)

	value, err = resolve(t, resolvers.CollectionConverter(resolvers.PropertyResolver{Field: "Shelves"}), &Book{Shelves: [2]string{"a", "b"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, value)

	value, err = resolve(t, resolvers.CollectionConverter(resolvers.PropertyResolver{Field: "Missing"}), &Book{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, value)
}

func TestRegistry(t *testing.T) {
	registry := resolvers.NewRegistry()
	assert.Equal(t, []string{resolvers.Method, resolvers.Property}, registry.Names())

	r, err := registry.New(resolvers.Property, resolvers.Target{Type: "Book", Field: "title", GoName: "Title"})
	require.NoError(t, err)
	assert.Equal(t, resolvers.PropertyResolver{Field: "Title"}, r)

	_, err = registry.New("upper", resolvers.Target{})
	assert.EqualError(t, err, `no resolver named "upper" is registered`)

	registry.Register("broken", func(target resolvers.Target) (resolvers.Resolver, error) {
		return nil, errors.New("boom")
	})
	_, err = registry.New("broken", resolvers.Target{Type: "Book", Field: "title"})
	assert.EqualError(t, err, `creating resolver "broken" for Book.title: boom`)
}

func TestResolverList(t *testing.T) {
	list := resolvers.List(resolvers.PropertyResolver{Field: "Missing"})
	list.Add(resolvers.PropertyResolver{Field: "Title"})
	value, err := resolve(t, list, &Book{Title: "Dune"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", value)
}

func TestTypeAndFieldResolver(t *testing.T) {
	r := resolvers.TypeAndFieldResolver{}
	r.Set("Book", "field", resolvers.PropertyResolver{Field: "Title"})
	assert.NotNil(t, r.Get("Book", "field"))

	value, err := resolve(t, r, &Book{Title: "Dune"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Dune", value)

	assert.Nil(t, r.Resolve(&resolvers.ResolveRequest{ParentType: &schema.Object{Name: "Author"}, Field: &schema.Field{Name: "field"}}, nil))
}
