package mapper

import (
	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/typeref"
)

func (m *Mapper) inputType(t typeref.Type) (schema.Type, error) {
	if v, ok := t.(*typeref.Variable); ok {
		bound, err := m.env.Lookup(v)
		if err != nil {
			return nil, err
		}
		return m.inputType(bound)
	}
	t, err := m.env.Substitute(t)
	if err != nil {
		return nil, err
	}

	name := m.naming.TypeName(t)
	if cached, ok := m.input.get(name); ok {
		return cached, nil
	}
	if tm := m.typeMapperFor(t); tm != nil {
		in, err := tm.InputType(m, t)
		if err != nil {
			return nil, err
		}
		if in == nil {
			return nil, errors.NewInternalInconsistencyError("type mapper %T returned no input type for %s", tm, t)
		}
		m.input.put(name, in)
		return in, nil
	}

	out, err := m.outputType(t)
	if err != nil {
		return nil, err
	}
	in, err := m.synthesize(out)
	if err != nil {
		return nil, err
	}
	if _, ok := m.input.get(name); !ok {
		m.input.put(name, in)
	}
	return in, nil
}

// synthesize derives the input type of an output type. Scalars and enums
// are their own input types; an object becomes an input object with the
// same fields, named with the input suffix.
func (m *Mapper) synthesize(out schema.Type) (schema.Type, error) {
	switch out := out.(type) {
	case *schema.Scalar, *schema.Enum, *schema.InputObject:
		return out, nil
	case *schema.List:
		ofType, err := m.synthesize(out.OfType)
		if err != nil {
			return nil, err
		}
		return &schema.List{OfType: ofType}, nil
	case *schema.NonNull:
		ofType, err := m.synthesize(out.OfType)
		if err != nil {
			return nil, err
		}
		return &schema.NonNull{OfType: ofType}, nil
	case *schema.TypeName:
		if resolved, ok := m.output.get(out.Name); ok {
			if _, forward := resolved.(*schema.TypeName); !forward {
				return m.synthesize(resolved)
			}
		}
	case *schema.Object:
		if cached, ok := m.input.get(out.Name); ok {
			return cached, nil
		}
		if m.output.pending(out.Name) {
			return nil, errors.NewInternalInconsistencyError("input type of %s requested while it is being built", out.Name)
		}
		in := &schema.InputObject{Name: out.Name + m.inputSuffix, Desc: out.Desc}
		m.input.reserve(out.Name, in)
		for _, f := range out.Fields {
			t, err := m.synthesize(f.Type)
			if err != nil {
				m.input.remove(out.Name)
				return nil, err
			}
			in.Fields = append(in.Fields, &schema.InputValue{Name: f.Name, Type: t, Desc: f.Desc})
		}
		m.input.complete(out.Name)
		return in, nil
	}
	return nil, errors.NewInternalInconsistencyError("cannot derive an input type from %s %s", out.Kind(), out)
}
