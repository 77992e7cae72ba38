package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chirino/graphql-schemagen/schema"
)

func people() (*schema.Object, *schema.Interface) {
	node := &schema.Interface{
		Name:   "Node",
		Fields: schema.FieldList{{Name: "id", Type: schema.String}},
	}
	person := &schema.Object{
		Name:       "Person",
		Desc:       "A person.",
		Interfaces: schema.InterfaceList{node},
	}
	color := &schema.Enum{Name: "Color", Values: []*schema.EnumValue{{Name: "RED"}, {Name: "GREEN", Desc: "go"}}}
	filter := &schema.InputObject{Name: "Filter_Input", Fields: schema.InputValueList{
		{Name: "first", Type: schema.Int},
		{Name: "color", Type: color},
	}}
	person.Fields = schema.FieldList{
		{Name: "id", Type: schema.String},
		{Name: "age", Type: schema.Long},
		{Name: "friends", Type: &schema.List{OfType: person}, Args: schema.InputValueList{
			{Name: "filter", Type: filter},
		}},
		{Name: "favorite", Type: &schema.NonNull{OfType: color}},
	}
	node.PossibleTypes = []*schema.Object{person}
	return person, node
}

func TestAddIfMissing(t *testing.T) {
	person, _ := people()
	s := schema.New()
	s.EntryPoints[schema.Query] = person
	s.AddIfMissing(s)

	var names []string
	for name := range s.Types {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"Int", "Float", "String", "Boolean", "ID", "Long", "Person", "Node", "Color", "Filter_Input"}, names)
}

func TestWriteSchemaFormat(t *testing.T) {
	person, _ := people()
	s := schema.New()
	s.EntryPoints[schema.Query] = person
	s.AddIfMissing(s)

	assert.Equal(t, `enum Color {
  RED
  "go"
  GREEN
}
input Filter_Input {
  first:Int
  color:Color
}
"64 bit signed whole numeric values."
scalar Long
interface Node {
  id:String
}
"A person."
type Person implements Node {
  id:String
  age:Long
  friends(filter:Filter_Input):[Person]
  favorite:Color!
}
schema {
  query: Person
}
`, s.String())
}

func TestResolveTypes(t *testing.T) {
	node := &schema.Interface{Name: "Node", Fields: schema.FieldList{{Name: "id", Type: schema.String}}}
	person := &schema.Object{
		Name:           "Person",
		InterfaceNames: []string{"Node"},
		Fields: schema.FieldList{
			{Name: "id", Type: schema.String},
			{Name: "friends", Type: &schema.List{OfType: &schema.TypeName{Name: "Person"}}, Args: schema.InputValueList{
				{Name: "first", Type: &schema.NonNull{OfType: &schema.TypeName{Name: "Int"}}},
			}},
		},
	}
	s := schema.New()
	s.Types["Node"] = node
	s.Types["Person"] = person

	require.NoError(t, s.ResolveTypes())
	assert.Same(t, person, schema.OfType(person.Fields.Get("friends").Type))
	assert.Same(t, schema.Int, schema.DeepestType(person.Fields.Get("friends").Args.Get("first").Type))
	assert.Same(t, node, person.Interfaces.Get("Node"))
	assert.Equal(t, []*schema.Object{person}, node.PossibleTypes)

	// linking twice is a no-op
	require.NoError(t, s.ResolveTypes())
	assert.Len(t, node.PossibleTypes, 1)
}

func TestResolveUnknownType(t *testing.T) {
	s := schema.New()
	s.Types["Person"] = &schema.Object{Name: "Person", Fields: schema.FieldList{
		{Name: "pet", Type: &schema.TypeName{Name: "Pet"}},
	}}
	assert.EqualError(t, s.ResolveTypes(), `unknown type "Pet"`)

	s = schema.New()
	s.Types["Person"] = &schema.Object{Name: "Person", InterfaceNames: []string{"String"}}
	assert.EqualError(t, s.ResolveTypes(), `"String" is not an interface`)
}

func TestIsList(t *testing.T) {
	assert.True(t, schema.IsList(&schema.List{OfType: schema.Int}))
	assert.True(t, schema.IsList(&schema.NonNull{OfType: &schema.List{OfType: schema.Int}}))
	assert.False(t, schema.IsList(schema.Int))
	assert.Nil(t, schema.OfType(schema.Int))
}
