package resolvers

///////////////////////////////////////////////////////////////////////
//
// ResolverList uses a list of other resolvers to resolve requests.
// First resolver that matches wins.
//
///////////////////////////////////////////////////////////////////////
type ResolverList []Resolver

func List(resolvers ...Resolver) *ResolverList {
	list := ResolverList(resolvers)
	return &list
}

func (l *ResolverList) Add(resolver Resolver) {
	*l = append(*l, resolver)
}

func (l *ResolverList) Resolve(request *ResolveRequest, next Resolution) Resolution {
	for _, r := range *l {
		if resolution := r.Resolve(request, nil); resolution != nil {
			return resolution
		}
	}
	return next
}
