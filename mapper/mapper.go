// Package mapper turns type references into GraphQL schema types.
//
// A Mapper resolves a typeref.Type to a schema.Type by consulting, in order,
// its cache of already resolved types, its registered type mappers and
// finally the structure of the type itself: basic kinds map to scalars,
// enumerations to enums and everything else to objects whose fields are
// discovered from accessor methods and struct fields. Generic type
// parameters are bound in an Environment as parameterized types are entered.
//
// A Mapper is not safe for concurrent use. Use one Mapper per schema build.
package mapper

import (
	"context"
	"reflect"

	"github.com/gobwas/glob"

	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/naming"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/trace"
	"github.com/chirino/graphql-schemagen/typeref"
)

// ResolverFactory creates the resolver named by a field's markers.
type ResolverFactory interface {
	New(name string, target resolvers.Target) (resolvers.Resolver, error)
}

// DefaultRootPackages are the packages whose embedded types are not walked
// for fields.
var DefaultRootPackages = []string{"sync", "sync/**", "runtime", "runtime/**", "reflect", "unsafe"}

type Mapper struct {
	naming          naming.Strategy
	typeMappers     *Registry
	resolverFactory ResolverFactory
	universe        *typeref.Universe
	logger          log.Logger
	tracer          trace.Tracer
	rootPatterns    []string
	roots           []glob.Glob
	queryProviders  map[string]QueryProvider
	inputSuffix     string
	methodResolver  string
	getterPrefixes  []string
	ctx             context.Context

	output    *cache
	input     *cache
	env       *Environment
	depth     int
	resolvers resolvers.TypeAndFieldResolver
	node      *schema.Interface
	nodeRef   typeref.Type
}

// New creates a Mapper. Without options it uses Simple naming, the default
// type mappers and the default resolver registry.
func New(options ...Option) (*Mapper, error) {
	m := &Mapper{
		naming:          naming.Simple{},
		typeMappers:     DefaultTypeMappers(),
		resolverFactory: resolvers.NewRegistry(),
		logger:          log.Discard,
		tracer:          trace.NoopTracer{},
		rootPatterns:    DefaultRootPackages,
		queryProviders:  map[string]QueryProvider{},
		inputSuffix:     "_Input",
		methodResolver:  resolvers.Method,
		getterPrefixes:  []string{"Get", "Is"},
		ctx:             context.Background(),
		output:          newCache(),
		input:           newCache(),
		resolvers:       resolvers.TypeAndFieldResolver{},
	}
	for _, option := range options {
		option(m)
	}
	if m.universe == nil {
		m.universe = typeref.NewUniverse()
	}
	for _, pattern := range m.rootPatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, "invalid root package pattern %q", pattern)
		}
		m.roots = append(m.roots, g)
	}

	m.nodeRef = m.universe.Of(reflect.TypeOf((*typeref.Node)(nil)).Elem())
	m.node = &schema.Interface{
		Name: m.naming.TypeName(m.nodeRef),
		Fields: schema.FieldList{
			{Name: "id", Type: schema.String},
		},
	}
	m.output.put(m.node.Name, m.node)
	return m, nil
}

// ResolveOutputType returns the output schema type of t. Resolving the same
// reference again returns the identical instance.
func (m *Mapper) ResolveOutputType(t typeref.Type) (schema.Type, error) {
	defer m.enter()()
	return m.outputType(t)
}

// ResolveInputType returns the input schema type of t.
func (m *Mapper) ResolveInputType(t typeref.Type) (schema.Type, error) {
	defer m.enter()()
	return m.inputType(t)
}

// enter scopes the generic environment to the outermost resolve call.
func (m *Mapper) enter() func() {
	if m.depth == 0 {
		m.env = NewEnvironment()
	}
	m.depth++
	return func() {
		m.depth--
		if m.depth == 0 {
			m.env = nil
		}
	}
}

func (m *Mapper) outputType(t typeref.Type) (schema.Type, error) {
	if v, ok := t.(*typeref.Variable); ok {
		bound, err := m.env.Lookup(v)
		if err != nil {
			return nil, err
		}
		return m.outputType(bound)
	}
	t, err := m.env.Substitute(t)
	if err != nil {
		return nil, err
	}

	name := m.naming.TypeName(t)
	if cached, ok := m.output.get(name); ok {
		if cached == schema.Type(m.node) && t != m.nodeRef {
			return nil, errors.NewBuildError(nil, "type %s is named %q, which is reserved for the node interface", t, name)
		}
		return cached, nil
	}

	if tm := m.typeMappers.Find(m, t); tm != nil {
		return m.mapOutput(name, tm, t)
	}

	switch t := t.(type) {
	case *typeref.Parameterized:
		if tm := m.typeMappers.Find(m, t.Raw); tm != nil {
			return m.mapOutput(name, tm, t)
		}
		return m.buildObject(name, t, t.Raw)
	case *typeref.Wildcard:
		bound := wildcardBound(t)
		if bound == nil {
			return nil, errors.NewNotMappableError(t.String())
		}
		return m.outputType(bound)
	case *typeref.Class:
		switch t.Shape {
		case typeref.Basic:
			scalar := ScalarOf(t.Basic)
			if scalar == nil {
				return nil, errors.NewNotMappableError(t.String())
			}
			m.output.put(name, scalar)
			return scalar, nil
		case typeref.Enumeration:
			return m.buildEnum(name, t), nil
		case typeref.Struct:
			return m.buildObject(name, t, t)
		}
	}
	return nil, errors.NewNotMappableError(t.String())
}

func (m *Mapper) mapOutput(name string, tm TypeMapper, t typeref.Type) (schema.Type, error) {
	out, err := tm.OutputType(m, t)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.NewInternalInconsistencyError("type mapper %T returned no output type for %s", tm, t)
	}
	m.output.put(name, out)
	return out, nil
}

func (m *Mapper) buildEnum(name string, c *typeref.Class) *schema.Enum {
	enum := &schema.Enum{Name: name}
	for _, v := range c.EnumValues {
		enum.Values = append(enum.Values, &schema.EnumValue{Name: v})
	}
	m.output.put(name, enum)
	return enum
}

func wildcardBound(w *typeref.Wildcard) typeref.Type {
	if len(w.Lower) > 0 {
		return w.Lower[0]
	}
	if len(w.Upper) > 0 {
		return w.Upper[0]
	}
	return nil
}

// ScalarOf returns the scalar a basic kind maps to, or nil.
func ScalarOf(kind reflect.Kind) *schema.Scalar {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint8, reflect.Uint16:
		return schema.Int
	case reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return schema.Long
	case reflect.Float32, reflect.Float64:
		return schema.Float
	case reflect.String:
		return schema.String
	case reflect.Bool:
		return schema.Boolean
	}
	return nil
}

// Resolvers returns the resolvers selected for the fields of every object
// built so far, keyed by object and field name.
func (m *Mapper) Resolvers() resolvers.TypeAndFieldResolver {
	return m.resolvers
}

// NodeInterface is the interface shared by every type with the node capability.
func (m *Mapper) NodeInterface() *schema.Interface {
	return m.node
}

func (m *Mapper) Universe() *typeref.Universe {
	return m.universe
}

func (m *Mapper) Logger() log.Logger {
	return m.logger
}

// OutputTypes returns the named output types resolved so far.
func (m *Mapper) OutputTypes() []schema.NamedType {
	return m.output.namedTypes()
}

// InputTypes returns the named input types resolved so far.
func (m *Mapper) InputTypes() []schema.NamedType {
	return m.input.namedTypes()
}

// TypeName returns the canonical name of t.
func (m *Mapper) TypeName(t typeref.Type) string {
	return m.naming.TypeName(t)
}

func (m *Mapper) isRoot(c *typeref.Class) bool {
	if c.Markers.Root {
		return true
	}
	if c.PkgPath == "" {
		return false
	}
	for _, g := range m.roots {
		if g.Match(c.PkgPath) {
			return true
		}
	}
	return false
}
