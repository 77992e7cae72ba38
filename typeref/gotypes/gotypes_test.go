package gotypes_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/mapper"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
	"github.com/chirino/graphql-schemagen/typeref/gotypes"
)

const src = `
package example

type Box[T any] struct {
	Value T
	Items []T
	hidden int
}

func (b *Box[X]) GetFirst() X {
	var zero X
	return zero
}

//graphql:enum
type Color string

const (
	Red   Color = "RED"
	Green Color = "GREEN"
	Blue  Color = "BLUE"
)

type Base struct {
	Created int64
}

// Person is somebody.
//
//graphql:name=Human
type Person struct {
	Base
	Key      string ` + "`graphql:\"-\"`" + `
	Name     string ` + "`graphql:\"fullName\"`" + `
	Password string ` + "`graphql:\"-\"`" + `
	Favorite Color
	Tags     map[string]bool
	Friends  []*Person
	Box      Box[int]
}

func (p *Person) GetId() string {
	return p.Key
}

//graphql:ignore
func (p *Person) GetSecret() string {
	return ""
}

func (p *Person) GetAge() (int, error) {
	return 0, nil
}

//graphql:query=people
type Query struct{}
`

func load(t *testing.T) (*typeref.Universe, map[string]*typeref.Class) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "example.go", src, parser.ParseComments)
	require.NoError(t, err)

	cfg := &types.Config{}
	pkg, err := cfg.Check("example.com/example", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	u := typeref.NewUniverse()
	classes := map[string]*typeref.Class{}
	for _, c := range gotypes.NewImporter(u).Import(pkg, []*ast.File{file}) {
		classes[c.Name] = c
	}
	return u, classes
}

func TestImportGenericDeclaration(t *testing.T) {
	_, classes := load(t)
	box := classes["Box"]
	require.NotNil(t, box)

	require.Len(t, box.TypeParams, 1)
	assert.Equal(t, "T", box.TypeParams[0].Name)

	value := box.Field("value")
	require.NotNil(t, value)
	assert.Equal(t, &typeref.Variable{Name: "T"}, value.Type)

	items := box.Field("items")
	require.NotNil(t, items)
	assert.True(t, typeref.IsList(items.Type))
	assert.Equal(t, "List[T]", items.Type.String())

	assert.Nil(t, box.Field("hidden"))

	first := box.Method("GetFirst")
	require.NotNil(t, first)
	assert.Equal(t, &typeref.Variable{Name: "T"}, first.Returns)
}

func TestImportStruct(t *testing.T) {
	u, classes := load(t)
	person := classes["Person"]
	require.NotNil(t, person)

	assert.Equal(t, "example.com/example", person.PkgPath)
	assert.Equal(t, "Human", person.Markers.Name)
	assert.True(t, person.Markers.Node)
	require.Len(t, person.Embedded, 1)
	assert.Same(t, classes["Base"], person.Embedded[0])

	assert.Equal(t, "Name", person.Field("fullName").GoName)
	assert.True(t, person.Field("password").Ignore)

	box := person.Field("box").Type.(*typeref.Parameterized)
	assert.Same(t, classes["Box"], box.Raw)
	assert.Equal(t, []typeref.Type{typeref.Int}, box.Args)

	friends := person.Field("friends").Type.(*typeref.Parameterized)
	assert.Same(t, person, friends.Args[0])

	assert.True(t, person.Method("GetSecret").Ignore)
	assert.True(t, person.Method("GetAge").ReturnsError)
	assert.Equal(t, typeref.Int, person.Method("GetAge").Returns)

	assert.Same(t, person, u.Lookup("example.com/example.Person"))
}

func TestImportEnum(t *testing.T) {
	_, classes := load(t)
	color := classes["Color"]
	require.NotNil(t, color)
	assert.Equal(t, typeref.Enumeration, color.Shape)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, color.EnumValues)
}

func TestImportDirectives(t *testing.T) {
	_, classes := load(t)
	assert.Equal(t, "people", classes["Query"].Markers.QueryFactory)
}

func TestMapImportedTypes(t *testing.T) {
	u, classes := load(t)
	m, err := mapper.New(mapper.WithUniverse(u))
	require.NoError(t, err)

	out, err := m.ResolveOutputType(classes["Box"].Instantiate(typeref.String))
	require.NoError(t, err)
	box := out.(*schema.Object)
	assert.Equal(t, "Box_string", box.Name)
	assert.Equal(t, schema.String, box.Fields.Get("value").Type)
	assert.Equal(t, schema.String, box.Fields.Get("first").Type)
	assert.Equal(t, "[String]", box.Fields.Get("items").Type.String())

	out, err = m.ResolveOutputType(classes["Person"])
	require.NoError(t, err)
	person := out.(*schema.Object)
	assert.Equal(t, "Human", person.Name)
	assert.Equal(t, []string{"id", "age", "fullName", "favorite", "tags", "friends", "box", "created"}, person.Fields.Names())
	assert.Nil(t, person.Fields.Get("secret"))
	assert.Equal(t, "Box_int", person.Fields.Get("box").Type.(*schema.Object).Name)
	assert.Equal(t, []string{"Node"}, person.InterfaceNames)
}
