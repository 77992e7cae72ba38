package schema

import "github.com/chirino/graphql-schemagen/errors"

func DeepestType(t Type) Type {
	switch t := (t).(type) {
	case *NonNull:
		return DeepestType(t.OfType)
	case *List:
		return DeepestType(t.OfType)
	}
	return t
}

func OfType(t Type) Type {
	switch t := (t).(type) {
	case *NonNull:
		return t.OfType
	case *List:
		return t.OfType
	default:
		return nil
	}
}

// IsList reports whether t is a list, possibly wrapped in a non null type.
func IsList(t Type) bool {
	if nn, ok := t.(*NonNull); ok {
		t = nn.OfType
	}
	_, ok := t.(*List)
	return ok
}

type Resolver func(name string) Type

// ResolveType replaces TypeName references nested in t.
func ResolveType(t Type, resolver Resolver) (Type, error) {
	switch t := t.(type) {
	case *List:
		ofType, err := ResolveType(t.OfType, resolver)
		if err != nil {
			return nil, err
		}
		t.OfType = ofType
		return t, nil
	case *NonNull:
		ofType, err := ResolveType(t.OfType, resolver)
		if err != nil {
			return nil, err
		}
		t.OfType = ofType
		return t, nil
	case *TypeName:
		refT := resolver(t.Name)
		if refT == nil {
			return nil, errors.Errorf("unknown type %q", t.Name)
		}
		return refT, nil
	default:
		return t, nil
	}
}
