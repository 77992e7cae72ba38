package mapper

import (
	"maps"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/typeref"
)

// Environment is a stack of type parameter bindings. Each frame maps a type
// parameter name to the concrete type it is bound to.
type Environment struct {
	frames []map[string]typeref.Type
}

func NewEnvironment() *Environment {
	return &Environment{}
}

// Push enters the parameterized type p. The new frame starts empty at the
// root and as a copy of the enclosing frame otherwise; p's parameters are
// then bound to its arguments. Arguments referring to type variables are
// resolved against the frame in effect before the push, which is what lets
// Outer[R,S] pass its parameters to Inner[S,R] swapped.
func (e *Environment) Push(p *typeref.Parameterized) error {
	if len(p.Args) != len(p.Raw.TypeParams) {
		return errors.NewInternalInconsistencyError("%s declares %d type parameters but has %d arguments",
			p.Raw, len(p.Raw.TypeParams), len(p.Args))
	}
	prev := e.top()
	frame := map[string]typeref.Type{}
	if prev != nil {
		maps.Copy(frame, prev)
	}
	for i, param := range p.Raw.TypeParams {
		arg, err := substitute(p.Args[i], prev)
		if err != nil {
			return err
		}
		frame[param.Name] = arg
	}
	e.frames = append(e.frames, frame)
	return nil
}

func (e *Environment) Pop() {
	if len(e.frames) > 0 {
		e.frames = e.frames[:len(e.frames)-1]
	}
}

func (e *Environment) Depth() int {
	return len(e.frames)
}

func (e *Environment) top() map[string]typeref.Type {
	if e == nil || len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// Lookup returns the type v is bound to in the top frame.
func (e *Environment) Lookup(v *typeref.Variable) (typeref.Type, error) {
	if bound, ok := e.top()[v.Name]; ok {
		return bound, nil
	}
	return nil, errors.NewResolutionError(v.Name)
}

// Substitute replaces every type variable in t with its binding in the top frame.
func (e *Environment) Substitute(t typeref.Type) (typeref.Type, error) {
	return substitute(t, e.top())
}

func substitute(t typeref.Type, frame map[string]typeref.Type) (typeref.Type, error) {
	if !typeref.Contains(t) {
		return t, nil
	}
	switch t := t.(type) {
	case *typeref.Variable:
		bound, ok := frame[t.Name]
		if !ok {
			return nil, errors.NewResolutionError(t.Name)
		}
		return bound, nil
	case *typeref.Parameterized:
		args := make([]typeref.Type, len(t.Args))
		for i, a := range t.Args {
			s, err := substitute(a, frame)
			if err != nil {
				return nil, err
			}
			args[i] = s
		}
		return &typeref.Parameterized{Raw: t.Raw, Args: args}, nil
	case *typeref.Wildcard:
		w := &typeref.Wildcard{}
		for _, b := range t.Upper {
			s, err := substitute(b, frame)
			if err != nil {
				return nil, err
			}
			w.Upper = append(w.Upper, s)
		}
		for _, b := range t.Lower {
			s, err := substitute(b, frame)
			if err != nil {
				return nil, err
			}
			w.Lower = append(w.Lower, s)
		}
		return w, nil
	}
	return t, nil
}
