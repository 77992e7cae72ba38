package resolvers

import "reflect"

///////////////////////////////////////////////////////////////////////
//
// PropertyResolver resolves fields using a struct field of the parent
// value. Fields promoted from embedded structs are found too.
//
///////////////////////////////////////////////////////////////////////
type PropertyResolver struct {
	Field string
}

func (r PropertyResolver) Resolve(request *ResolveRequest, next Resolution) Resolution {
	parentValue := Dereference(request.Parent)
	var childValue reflect.Value
	switch parentValue.Kind() {
	case reflect.Struct:
		f, ok := parentValue.Type().FieldByName(r.Field)
		if !ok {
			return next
		}
		v, err := parentValue.FieldByIndexErr(f.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			v = reflect.Zero(f.Type)
		}
		childValue = v
	case reflect.Map:
		if parentValue.Type().Key().Kind() != reflect.String {
			return next
		}
		childValue = parentValue.MapIndex(reflect.ValueOf(r.Field).Convert(parentValue.Type().Key()))
		if !childValue.IsValid() {
			childValue = reflect.Zero(parentValue.Type().Elem())
		}
	default:
		return next
	}
	if !childValue.IsValid() {
		return next
	}
	return func() (reflect.Value, error) {
		return childValue, nil
	}
}
