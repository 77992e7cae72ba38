package resolvers

// TypeAndFieldResolver dispatches a request to the resolver registered for
// the parent type and field name.
type TypeAndFieldResolver map[TypeAndFieldKey]Resolver

type TypeAndFieldKey struct {
	Type  string
	Field string
}

func (r TypeAndFieldResolver) Set(typeName string, field string, resolver Resolver) {
	r[TypeAndFieldKey{Type: typeName, Field: field}] = resolver
}

func (r TypeAndFieldResolver) Get(typeName string, field string) Resolver {
	return r[TypeAndFieldKey{Type: typeName, Field: field}]
}

func (r TypeAndFieldResolver) Resolve(request *ResolveRequest, next Resolution) Resolution {
	if request.ParentType == nil || request.Field == nil {
		return next
	}
	resolver := r.Get(request.ParentType.String(), request.Field.Name)
	if resolver == nil {
		return next
	}
	return resolver.Resolve(request, next)
}
