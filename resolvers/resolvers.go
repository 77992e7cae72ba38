package resolvers

import (
	"context"
	"reflect"

	"github.com/chirino/graphql-schemagen/schema"
)

// ResolveRequest is what an executor hands to a field resolver.
type ResolveRequest struct {
	Context    context.Context
	ParentType schema.Type
	Parent     reflect.Value
	Field      *schema.Field
	Args       map[string]interface{}
}

type Resolution func() (reflect.Value, error)

type Resolver interface {
	// Resolve allows you to inspect a ResolveRequest to see if your resolver can resolve it.
	// If you can resolve it, return a new Resolution that computes the value of the field.
	// If you don't know how to resolve that request, return next.
	//
	// The next variable hold the Resolution of the previous resolver, this allows your resolver
	// to filter it's results.  next may be nil if no resolution has been found yet.
	Resolve(request *ResolveRequest, next Resolution) Resolution
}

// Dereference follows pointers and interfaces until it reaches a concrete value.
func Dereference(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}

// Chain feeds the resolution of each resolver into the next one.
func Chain(resolvers ...Resolver) Resolver {
	return Func(func(request *ResolveRequest, next Resolution) Resolution {
		for _, r := range resolvers {
			next = r.Resolve(request, next)
		}
		return next
	})
}
