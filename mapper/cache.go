package mapper

import (
	"sort"

	"github.com/chirino/graphql-schemagen/schema"
)

// cache maps canonical names to schema types. An entry is pending from the
// moment its handle is reserved until construction completes; recursion
// that reaches a pending entry captures the same handle that is finished
// in place.
type cache struct {
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	t       schema.Type
	pending bool
}

func newCache() *cache {
	return &cache{entries: map[string]*cacheEntry{}}
}

func (c *cache) get(name string) (schema.Type, bool) {
	e := c.entries[name]
	if e == nil {
		return nil, false
	}
	return e.t, true
}

func (c *cache) put(name string, t schema.Type) {
	c.entries[name] = &cacheEntry{t: t}
}

func (c *cache) reserve(name string, t schema.Type) {
	c.entries[name] = &cacheEntry{t: t, pending: true}
}

func (c *cache) complete(name string) {
	if e := c.entries[name]; e != nil {
		e.pending = false
	}
}

func (c *cache) pending(name string) bool {
	e := c.entries[name]
	return e != nil && e.pending
}

func (c *cache) remove(name string) {
	delete(c.entries, name)
}

// namedTypes returns the distinct named types held, sorted by name.
func (c *cache) namedTypes() []schema.NamedType {
	seen := map[schema.NamedType]bool{}
	var result []schema.NamedType
	for _, e := range c.entries {
		if nt, ok := e.t.(schema.NamedType); ok && !seen[nt] {
			seen[nt] = true
			result = append(result, nt)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TypeName() < result[j].TypeName()
	})
	return result
}
