package resolvers

import (
	"fmt"
	"reflect"
	"sort"
)

// MapEntry is the value a map entry is exposed as.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

///////////////////////////////////////////////////////////////////////
//
// MapConverter wraps a resolver producing a map so that it produces a
// list of MapEntry values sorted by key. An absent or nil map resolves
// to an empty list.
//
///////////////////////////////////////////////////////////////////////
func MapConverter(r Resolver) Resolver {
	return Chain(r, MapValue(mapEntries))
}

// SetConverter wraps a resolver producing a map used as a set, such as
// map[Color]bool, so that it produces the sorted list of keys whose value
// is not false.
func SetConverter(r Resolver) Resolver {
	return Chain(r, MapValue(setKeys))
}

func mapEntries(value reflect.Value) reflect.Value {
	value = Dereference(value)
	entries := []MapEntry{}
	if value.Kind() != reflect.Map {
		return reflect.ValueOf(entries)
	}
	iter := value.MapRange()
	for iter.Next() {
		entries = append(entries, MapEntry{
			Key:   iter.Key().Interface(),
			Value: iter.Value().Interface(),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Key, entries[j].Key)
	})
	return reflect.ValueOf(entries)
}

func setKeys(value reflect.Value) reflect.Value {
	value = Dereference(value)
	keys := []interface{}{}
	if value.Kind() != reflect.Map {
		return reflect.ValueOf(keys)
	}
	iter := value.MapRange()
	for iter.Next() {
		if v := iter.Value(); v.Kind() == reflect.Bool && !v.Bool() {
			continue
		}
		keys = append(keys, iter.Key().Interface())
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return less(keys[i], keys[j])
	})
	return reflect.ValueOf(keys)
}

func less(a, b interface{}) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == vb.Kind() {
		switch va.Kind() {
		case reflect.String:
			return va.String() < vb.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return va.Int() < vb.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return va.Uint() < vb.Uint()
		case reflect.Float32, reflect.Float64:
			return va.Float() < vb.Float()
		case reflect.Bool:
			return !va.Bool() && vb.Bool()
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

///////////////////////////////////////////////////////////////////////
//
// CollectionConverter wraps a resolver producing a slice, array or a
// pointer to one so that it produces a slice. An absent value resolves
// to an empty list.
//
///////////////////////////////////////////////////////////////////////
func CollectionConverter(r Resolver) Resolver {
	return Chain(r, MapValue(materialize))
}

func materialize(value reflect.Value) reflect.Value {
	value = Dereference(value)
	switch value.Kind() {
	case reflect.Slice:
		if value.IsNil() {
			return reflect.MakeSlice(value.Type(), 0, 0)
		}
		return value
	case reflect.Array:
		items := reflect.MakeSlice(reflect.SliceOf(value.Type().Elem()), value.Len(), value.Len())
		reflect.Copy(items, value)
		return items
	}
	return reflect.ValueOf([]interface{}{})
}
