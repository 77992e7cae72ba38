package shop

import "github.com/chirino/graphql-schemagen/relay"

//graphql:enum
type Size string

const (
	Small Size = "S"
	Large Size = "L"
)

type Product struct {
	Sku   string
	Price float64
	Sizes []Size
}

func (p *Product) GetId() string {
	return p.Sku
}

type Query struct {
	Featured *Product
	Products relay.Connection[*Product]
}

type Mutation struct {
	Restocked int
}
