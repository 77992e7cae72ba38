package typeref_test

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/typeref"
)

type Age int

type Color string

func (*Color) EnumValues() []string {
	return []string{"RED", "GREEN"}
}

type Audit struct {
	Created int64
}

func (a *Audit) GetCreatedBy() string {
	return ""
}

type Person struct {
	Audit
	sync.Mutex
	_        struct{}
	Name     string `graphql:"fullName"`
	Password string `graphql:"-"`
	Notes    string `graphql:",resolver=notes"`
	Age      Age
	Friends  []*Person
	Tags     map[string]bool
	private  int
}

func (p *Person) GetId() string {
	return p.Name
}

func (p *Person) GetAge(ctx context.Context) (int, error) {
	return int(p.Age), nil
}

func (p *Person) Rename(name string) {
	p.Name = name
}

func (*Person) GraphQLAnnotations() typeref.Annotations {
	return typeref.Annotations{
		Name: "Human",
		Methods: map[string]typeref.MethodAnnotation{
			"GetId": {Resolver: "id"},
		},
	}
}

type Box[T any] struct {
	Value T
}

func TestOfBasics(t *testing.T) {
	u := typeref.NewUniverse()
	var i *int
	assert.Same(t, typeref.Int, u.TypeOf(0))
	assert.Same(t, typeref.Int, u.TypeOf(i))
	assert.Same(t, typeref.String, u.TypeOf(""))

	age := u.TypeOf(Age(0)).(*typeref.Class)
	assert.Equal(t, typeref.Basic, age.Shape)
	assert.Equal(t, reflect.Int, age.Basic)
	assert.Same(t, age, u.TypeOf(Age(1)))

	color := u.TypeOf(Color("")).(*typeref.Class)
	assert.Equal(t, typeref.Enumeration, color.Shape)
	assert.Equal(t, []string{"RED", "GREEN"}, color.EnumValues)
}

func TestOfContainers(t *testing.T) {
	u := typeref.NewUniverse()

	list := u.TypeOf([]string{})
	assert.True(t, typeref.IsList(list))
	assert.Equal(t, "List[string]", list.String())

	array := u.TypeOf([3]int{})
	assert.True(t, typeref.IsList(array))

	m := u.TypeOf(map[string]int{})
	assert.True(t, typeref.IsMap(m))
	assert.Equal(t, "Map[string,int]", m.String())

	assert.Equal(t, typeref.Opaque, u.TypeOf(func() {}).(*typeref.Class).Shape)
	assert.Equal(t, typeref.Opaque, u.TypeOf(struct{ A int }{}).(*typeref.Class).Shape)
	assert.Same(t, typeref.Any, u.Of(nil))
}

func TestOfStruct(t *testing.T) {
	u := typeref.NewUniverse()
	person := u.TypeOf(&Person{}).(*typeref.Class)

	assert.Equal(t, "Person", person.Name)
	assert.Equal(t, typeref.Struct, person.Shape)
	assert.Equal(t, "Human", person.Markers.Name)
	assert.True(t, person.Markers.Node)

	require.Len(t, person.Embedded, 2)
	assert.Same(t, u.TypeOf(Audit{}), person.Embedded[0])
	assert.Equal(t, "sync", person.Embedded[1].(*typeref.Class).PkgPath)

	names := []string{}
	for _, f := range person.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"_", "fullName", "password", "notes", "age", "friends", "tags"}, names)
	assert.True(t, person.Field("_").Synthetic)
	assert.Equal(t, "Name", person.Field("fullName").GoName)
	assert.True(t, person.Field("password").Ignore)
	assert.Equal(t, "notes", person.Field("notes").Resolver)
	assert.Same(t, person, person.Field("friends").Type.(*typeref.Parameterized).Args[0])

	// promoted methods belong to the embedded classes
	assert.Nil(t, person.Method("GetCreatedBy"))
	assert.Nil(t, person.Method("Lock"))

	getAge := person.Method("GetAge")
	require.NotNil(t, getAge)
	assert.True(t, getAge.TakesContext)
	assert.True(t, getAge.ReturnsError)
	assert.True(t, getAge.Accessor())
	assert.Same(t, typeref.Int, getAge.Returns)

	rename := person.Method("Rename")
	require.NotNil(t, rename)
	assert.False(t, rename.Accessor())

	assert.Equal(t, "id", person.Method("GetId").Resolver)
}

type Draft struct {
	Audit
}

func (d *Draft) GetCreatedBy() (string, error) {
	return "", nil
}

type Copy struct {
	Audit
}

func (c *Copy) GetCreatedBy() string {
	return "copy"
}

func (*Copy) GraphQLAnnotations() typeref.Annotations {
	return typeref.Annotations{
		Methods: map[string]typeref.MethodAnnotation{
			"GetCreatedBy": {Ignore: true},
		},
	}
}

func TestOverriddenMethods(t *testing.T) {
	u := typeref.NewUniverse()

	draft := u.TypeOf(Draft{}).(*typeref.Class)
	createdBy := draft.Method("GetCreatedBy")
	require.NotNil(t, createdBy)
	assert.True(t, createdBy.ReturnsError)

	copied := u.TypeOf(Copy{}).(*typeref.Class)
	createdBy = copied.Method("GetCreatedBy")
	require.NotNil(t, createdBy)
	assert.True(t, createdBy.Ignore)
}

func TestOfGenericInstance(t *testing.T) {
	u := typeref.NewUniverse()
	box := u.TypeOf(Box[int]{}).(*typeref.Class)
	assert.Equal(t, "Box", box.Name)
	assert.Equal(t, []string{"int"}, box.InstanceArgs)
	assert.Same(t, typeref.Int, box.Field("value").Type)

	nested := u.TypeOf(Box[*Person]{}).(*typeref.Class)
	assert.Equal(t, []string{"Person"}, nested.InstanceArgs)
}

func TestDeclaredClassWins(t *testing.T) {
	u := typeref.NewUniverse()
	declared := typeref.NewClass(reflect.TypeOf(Audit{}).PkgPath(), "Audit").AddField("created", typeref.Int64)
	u.Declare(declared)
	assert.Same(t, declared, u.TypeOf(Audit{}))
	assert.Same(t, declared, u.Lookup(declared.String()))
}

func TestDeclare(t *testing.T) {
	box := typeref.NewClass("example.com/m", "Box", "T", "U").
		AddField("first", nil).
		AddField("hidden", typeref.Int, typeref.Ignored())
	box.Fields[0].Type = box.Var("T")

	assert.True(t, box.IsGeneric())
	assert.Equal(t, "First", box.Field("first").GoName)
	assert.True(t, box.Field("hidden").Ignore)
	assert.Nil(t, box.Var("X"))

	p := box.Instantiate(typeref.Int, box.Var("U"))
	assert.Equal(t, "example.com/m.Box[int,U]", p.String())
	assert.True(t, typeref.Contains(p))
	assert.False(t, typeref.Contains(box.Instantiate(typeref.Int, typeref.String)))
	assert.Same(t, box, typeref.RawClass(p))

	color := typeref.NewEnum("example.com/m", "Color", "RED", "GREEN")
	assert.Equal(t, typeref.Enumeration, color.Shape)
}

func TestTaggedField(t *testing.T) {
	f := typeref.TaggedField("Name", "fullName, resolver=upper")
	assert.Equal(t, "fullName", f.Name)
	assert.Equal(t, "upper", f.Resolver)

	assert.True(t, typeref.TaggedField("Name", "-").Ignore)
	assert.True(t, typeref.TaggedField("Name", ",ignore").Ignore)
	assert.Equal(t, "name", typeref.TaggedField("Name", "").Name)
}
