package relay

import (
	"github.com/chirino/graphql-schemagen/customtypes"
	"github.com/chirino/graphql-schemagen/typeref"
)

const cursorKind = "cursor"

// Cursor is an opaque position in a connection.
type Cursor = customtypes.ID

type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     Cursor
	EndCursor       Cursor
}

type Edge[T any] struct {
	Node   T
	Cursor Cursor
}

// Connection is one page of a list of T.
type Connection[T any] struct {
	Edges      []Edge[T]
	PageInfo   PageInfo
	TotalCount int
}

// Paginate returns the page of at most first nodes following the cursor
// after. A first of zero or less returns every remaining node.
func Paginate[T any](nodes []T, first int, after Cursor) (*Connection[T], error) {
	start := 0
	if after != "" {
		var offset int
		if err := UnmarshalSpec(after, &offset); err != nil {
			return nil, err
		}
		start = offset + 1
	}
	if start > len(nodes) {
		start = len(nodes)
	}
	end := len(nodes)
	if first > 0 && start+first < end {
		end = start + first
	}

	c := &Connection[T]{
		Edges:      make([]Edge[T], 0, end-start),
		TotalCount: len(nodes),
	}
	for i := start; i < end; i++ {
		cursor, err := MarshalID(cursorKind, i)
		if err != nil {
			return nil, err
		}
		c.Edges = append(c.Edges, Edge[T]{Node: nodes[i], Cursor: cursor})
	}
	c.PageInfo.HasPreviousPage = start > 0
	c.PageInfo.HasNextPage = end < len(nodes)
	if len(c.Edges) > 0 {
		c.PageInfo.StartCursor = c.Edges[0].Cursor
		c.PageInfo.EndCursor = c.Edges[len(c.Edges)-1].Cursor
	}
	return c, nil
}

const pkgPath = "github.com/chirino/graphql-schemagen/relay"

// Classes are the generic declarations of the connection types. Reflection
// only sees instantiated generic types; declaring them lets a schema refer
// to Connection[T] with T bound by the enclosing type.
type Classes struct {
	PageInfo   *typeref.Class
	Edge       *typeref.Class
	Connection *typeref.Class
}

// Declare declares the connection classes in u.
func Declare(u *typeref.Universe) *Classes {
	id := u.TypeOf(customtypes.ID(""))
	c := &Classes{}
	c.PageInfo = typeref.NewClass(pkgPath, "PageInfo").
		AddField("hasNextPage", typeref.Bool).
		AddField("hasPreviousPage", typeref.Bool).
		AddField("startCursor", id).
		AddField("endCursor", id)

	c.Edge = typeref.NewClass(pkgPath, "Edge", "T")
	c.Edge.
		AddField("node", c.Edge.Var("T")).
		AddField("cursor", id)

	c.Connection = typeref.NewClass(pkgPath, "Connection", "T")
	c.Connection.
		AddField("edges", typeref.ListOf(c.Edge.Instantiate(c.Connection.Var("T")))).
		AddField("pageInfo", c.PageInfo).
		AddField("totalCount", typeref.Int)

	u.Declare(c.PageInfo)
	u.Declare(c.Edge)
	u.Declare(c.Connection)
	return c
}

// ConnectionOf returns the reference Connection[node].
func (c *Classes) ConnectionOf(node typeref.Type) *typeref.Parameterized {
	return c.Connection.Instantiate(node)
}
