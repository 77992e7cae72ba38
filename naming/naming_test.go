package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chirino/graphql-schemagen/naming"
	"github.com/chirino/graphql-schemagen/typeref"
)

const pkg = "example.com/shop-api/model"

func TestSimple(t *testing.T) {
	box := typeref.NewClass(pkg, "Box", "T", "U")
	person := typeref.NewClass(pkg, "Person")

	tests := []struct {
		name     string
		ref      typeref.Type
		expected string
	}{
		{"class", person, "Person"},
		{"basic", typeref.Int, "int"},
		{"parameterized", box.Instantiate(typeref.Int, typeref.String), "Box_int_string"},
		{"nested", box.Instantiate(box.Instantiate(typeref.Int, person), typeref.String), "Box_Box_int_Person_string"},
		{"list", typeref.ListOf(person), "List_Person"},
		{"variable", box.Var("T"), "T"},
		{"lower bound", &typeref.Wildcard{Lower: []typeref.Type{person}, Upper: []typeref.Type{typeref.String}}, "Person"},
		{"upper bound", &typeref.Wildcard{Upper: []typeref.Type{typeref.String}}, "string"},
		{"unbounded", &typeref.Wildcard{}, "Object"},
		{"reflected instance", &typeref.Class{Name: "Box", InstanceArgs: []string{"int", "Pair[int,string]"}}, "Box_int_Pair_int_string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, naming.Simple{}.TypeName(tt.ref))
		})
	}
}

func TestSimpleIsPure(t *testing.T) {
	box := typeref.NewClass(pkg, "Box", "T")
	s := naming.Simple{}
	first := s.TypeName(box.Instantiate(typeref.String))
	s.TypeName(box.Instantiate(typeref.Int))
	assert.Equal(t, first, s.TypeName(box.Instantiate(typeref.String)))
}

func TestOverride(t *testing.T) {
	person := typeref.NewClass(pkg, "Person").Mark(typeref.Markers{Name: "Human"})
	box := typeref.NewClass(pkg, "Box", "T")

	assert.Equal(t, "Human", naming.Simple{}.TypeName(person))
	assert.Equal(t, "Box_Human", naming.Simple{}.TypeName(box.Instantiate(person)))
	assert.Equal(t, "Human", naming.Full{}.TypeName(person))
}

func TestDelimiter(t *testing.T) {
	box := typeref.NewClass(pkg, "Box", "T", "U")
	assert.Equal(t, "Box__int__string", naming.Simple{Delimiter: "__"}.TypeName(box.Instantiate(typeref.Int, typeref.String)))
}

func TestFull(t *testing.T) {
	box := typeref.NewClass(pkg, "Box", "T")
	person := typeref.NewClass(pkg, "Person")

	assert.Equal(t, "example_com_shop_api_model_Person", naming.Full{}.TypeName(person))
	assert.Equal(t, "example_com_shop_api_model_Box_example_com_shop_api_model_Person", naming.Full{}.TypeName(box.Instantiate(person)))
	assert.Equal(t, "string", naming.Full{}.TypeName(typeref.String))
}

func TestRelay(t *testing.T) {
	xConnection := typeref.NewClass(pkg, "XConnection", "T")
	connection := typeref.NewClass(pkg, "Connection", "T")
	box := typeref.NewClass(pkg, "Box", "T")
	person := typeref.NewClass(pkg, "Person")
	relay := naming.Relay{}

	assert.Equal(t, "X_string_Connection", relay.TypeName(xConnection.Instantiate(typeref.String)))
	assert.Equal(t, "string_Connection", relay.TypeName(connection.Instantiate(typeref.String)))
	assert.Equal(t, "Person_Connection", relay.TypeName(connection.Instantiate(person)))
	assert.Equal(t, "Box_string", relay.TypeName(box.Instantiate(typeref.String)))
	assert.Equal(t, "XConnection", relay.TypeName(xConnection))

	// type arguments carry their own canonical names
	nested := xConnection.Instantiate(typeref.String)
	assert.Equal(t, "Box_X_string_Connection", relay.TypeName(box.Instantiate(nested)))
	assert.Equal(t, "X_string_Connection_Connection", relay.TypeName(connection.Instantiate(nested)))

	lower := typeref.NewClass(pkg, "Friendsconnection", "T")
	assert.Equal(t, "Friends_Person_connection", relay.TypeName(lower.Instantiate(person)))

	edges := naming.Relay{Suffix: "Edge"}
	assert.Equal(t, "Person_Edge", edges.TypeName(typeref.NewClass(pkg, "Edge", "T").Instantiate(person)))
}
