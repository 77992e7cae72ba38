package resolvers

import (
	"context"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

///////////////////////////////////////////////////////////////////////
//
// MethodResolver resolves fields by calling a method of the parent
// value. The method may take a context.Context and an arguments
// struct, and may return an error as its last result.
//
///////////////////////////////////////////////////////////////////////
type MethodResolver struct {
	Method string
}

func (r MethodResolver) Resolve(request *ResolveRequest, next Resolution) Resolution {
	if !request.Parent.IsValid() {
		return next
	}
	method := methodByName(request.Parent, r.Method)
	if !method.IsValid() {
		return next
	}
	return func() (reflect.Value, error) {
		return call(method, request)
	}
}

// BoundMethodResolver calls a method of a fixed receiver, ignoring the
// parent value. Query factories bind the fields they create to the live
// instance they were created from.
type BoundMethodResolver struct {
	Receiver reflect.Value
	Method   string
}

func (r BoundMethodResolver) Resolve(request *ResolveRequest, next Resolution) Resolution {
	method := methodByName(r.Receiver, r.Method)
	if !method.IsValid() {
		return next
	}
	return func() (reflect.Value, error) {
		return call(method, request)
	}
}

func methodByName(value reflect.Value, name string) reflect.Value {
	for value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}
	if value.Kind() == reflect.Ptr && value.IsNil() {
		return reflect.Value{}
	}
	if m := value.MethodByName(name); m.IsValid() {
		return m
	}
	if value.Kind() != reflect.Ptr {
		if value.CanAddr() {
			return value.Addr().MethodByName(name)
		}
		ptr := reflect.New(value.Type())
		ptr.Elem().Set(value)
		return ptr.MethodByName(name)
	}
	return reflect.Value{}
}

func call(method reflect.Value, request *ResolveRequest) (reflect.Value, error) {
	mt := method.Type()
	var in []reflect.Value
	for i := 0; i < mt.NumIn(); i++ {
		pt := mt.In(i)
		if pt == contextType {
			ctx := request.Context
			if ctx == nil {
				ctx = context.Background()
			}
			in = append(in, reflect.ValueOf(ctx))
			continue
		}
		arg, err := decodeArgs(request.Args, pt)
		if err != nil {
			return reflect.Value{}, err
		}
		in = append(in, arg)
	}

	result := method.Call(in)
	if n := mt.NumOut(); n > 0 && mt.Out(n-1) == errorType {
		if err := result[n-1]; !err.IsNil() {
			return reflect.Value{}, err.Interface().(error)
		}
		result = result[:n-1]
	}
	if len(result) == 0 {
		return reflect.Value{}, nil
	}
	return result[0], nil
}

// decodeArgs converts field arguments into a value of type t, which is a
// struct or a pointer to one.
func decodeArgs(args map[string]interface{}, t reflect.Type) (reflect.Value, error) {
	target := t
	if target.Kind() == reflect.Ptr {
		target = target.Elem()
	}
	value := reflect.New(target)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           value.Interface(),
		TagName:          "graphql",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return reflect.Value{}, errors.WithStack(err)
	}
	if err := decoder.Decode(args); err != nil {
		return reflect.Value{}, errors.Wrapf(err, "invalid arguments for %s", target)
	}
	if t.Kind() == reflect.Ptr {
		return value, nil
	}
	return value.Elem(), nil
}
