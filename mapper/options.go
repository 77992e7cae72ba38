package mapper

import (
	"context"

	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/naming"
	"github.com/chirino/graphql-schemagen/trace"
	"github.com/chirino/graphql-schemagen/typeref"
)

type Option func(m *Mapper)

func WithNaming(strategy naming.Strategy) Option {
	return func(m *Mapper) { m.naming = strategy }
}

// WithTypeMappers replaces the default type mapper registry.
func WithTypeMappers(registry *Registry) Option {
	return func(m *Mapper) { m.typeMappers = registry }
}

func WithResolverFactory(factory ResolverFactory) Option {
	return func(m *Mapper) { m.resolverFactory = factory }
}

func WithUniverse(universe *typeref.Universe) Option {
	return func(m *Mapper) { m.universe = universe }
}

func WithLogger(logger log.Logger) Option {
	return func(m *Mapper) { m.logger = logger }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(m *Mapper) { m.tracer = tracer }
}

// WithContext sets the context type construction spans are started from.
func WithContext(ctx context.Context) Option {
	return func(m *Mapper) { m.ctx = ctx }
}

// WithRootPackages replaces the glob patterns of packages whose types end
// the supertype walk. Patterns use '/' as separator, so "sync/**" matches
// every package below sync.
func WithRootPackages(patterns ...string) Option {
	return func(m *Mapper) { m.rootPatterns = patterns }
}

// WithQueryProvider registers the provider of query bearing types marked
// with key.
func WithQueryProvider(key string, provider QueryProvider) Option {
	return func(m *Mapper) { m.queryProviders[key] = provider }
}

// WithInputSuffix sets the suffix appended to object names to name their
// input counterparts. It defaults to "_Input".
func WithInputSuffix(suffix string) Option {
	return func(m *Mapper) { m.inputSuffix = suffix }
}

// WithMethodResolver sets the resolver used for accessor methods without
// any resolver marker.
func WithMethodResolver(name string) Option {
	return func(m *Mapper) { m.methodResolver = name }
}

func WithGetterPrefixes(prefixes ...string) Option {
	return func(m *Mapper) { m.getterPrefixes = prefixes }
}
