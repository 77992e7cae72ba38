package mapper

import (
	"reflect"
	"strings"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

// QueryFactory contributes extra fields to the objects of classes marked
// with its key.
type QueryFactory interface {
	NewQueriesForObject(m *Mapper, instance interface{}) ([]*FieldDescriptor, error)
}

// QueryProvider returns the instance and factory registered under a key.
type QueryProvider func() (interface{}, QueryFactory, error)

func (m *Mapper) queryFields(c *typeref.Class) ([]*FieldDescriptor, error) {
	key := c.Markers.QueryFactory
	provider := m.queryProviders[key]
	if provider == nil {
		return nil, errors.NewBuildError(nil, "no query provider registered under %q for %s", key, c)
	}
	instance, factory, err := provider()
	if err != nil {
		return nil, errors.NewBuildError(err, "query provider %q failed for %s", key, c)
	}
	if factory == nil {
		return nil, errors.NewBuildError(nil, "query provider %q returned no factory for %s", key, c)
	}
	descriptors, err := factory.NewQueriesForObject(m, instance)
	if err != nil {
		return nil, errors.NewBuildError(err, "query factory %q failed for %s", key, c)
	}

	result := make([]*FieldDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.OutputType == nil {
			if d.Type == nil {
				return nil, errors.NewBuildError(nil, "query %s of %s has no type", d.Name, c)
			}
			out, err := m.outputType(d.Type)
			if err != nil {
				if errors.IsNotMappable(err) {
					m.skipField(c, d.Name, err)
					continue
				}
				return nil, err
			}
			d.OutputType = out
		}
		result = append(result, d)
	}
	return result, nil
}

// MethodQueryFactory exposes the methods of the provided instance whose
// names start with Prefix as fields. A method taking a struct argument gets
// one field argument per struct field.
type MethodQueryFactory struct {
	Prefix string
}

func (f MethodQueryFactory) NewQueriesForObject(m *Mapper, instance interface{}) ([]*FieldDescriptor, error) {
	prefix := f.Prefix
	if prefix == "" {
		prefix = "Query"
	}
	c, ok := m.universe.TypeOf(instance).(*typeref.Class)
	if !ok {
		return nil, errors.Errorf("query instance %T is not a class", instance)
	}
	// a value instance gets one pointer shared by every bound resolver
	receiver := reflect.ValueOf(instance)
	if receiver.Kind() != reflect.Ptr {
		ptr := reflect.New(receiver.Type())
		ptr.Elem().Set(receiver)
		receiver = ptr
	}

	var result []*FieldDescriptor
	for _, method := range c.Methods {
		rest := strings.TrimPrefix(method.Name, prefix)
		if rest == method.Name || rest == "" || method.Ignore || method.Returns == nil {
			continue
		}
		d := &FieldDescriptor{Name: typeref.LowerFirst(rest), Type: method.Returns}
		for _, param := range method.Params {
			args, err := m.Arguments(param)
			if err != nil {
				return nil, err
			}
			d.Args = append(d.Args, args...)
		}
		out, err := m.outputType(method.Returns)
		if err != nil {
			if errors.IsNotMappable(err) {
				m.skipField(c, d.Name, err)
				continue
			}
			return nil, err
		}
		d.OutputType = out
		d.Resolver = m.WrapResolver(&resolvers.BoundMethodResolver{
			Receiver: receiver,
			Method:   method.Name,
		}, out, method.Returns)
		result = append(result, d)
	}
	return result, nil
}

// Arguments returns one input value per field of the struct t.
func (m *Mapper) Arguments(t typeref.Type) (schema.InputValueList, error) {
	defer m.enter()()
	t, err := m.env.Substitute(t)
	if err != nil {
		return nil, err
	}
	c := typeref.RawClass(t)
	if c == nil || c.Shape != typeref.Struct {
		return nil, errors.Errorf("arguments must be a struct").WithType(t.String())
	}
	var result schema.InputValueList
	for _, field := range c.Fields {
		if field.Ignore || field.Static || field.Synthetic {
			continue
		}
		in, err := m.inputType(field.Type)
		if err != nil {
			return nil, err
		}
		result = append(result, &schema.InputValue{Name: field.Name, Type: in})
	}
	return result, nil
}
