package resolvers

import "reflect"

// MapValue allows you to convert a resolved result to something new. When
// no earlier resolver produced a resolution the mapper receives the zero
// Value, so it can supply a default.
func MapValue(mapper func(value reflect.Value) reflect.Value) Resolver {
	return Func(func(request *ResolveRequest, next Resolution) Resolution {
		return func() (value reflect.Value, err error) {
			if next != nil {
				value, err = next()
				if err != nil {
					return
				}
			}
			value = mapper(value)
			return
		}
	})
}
