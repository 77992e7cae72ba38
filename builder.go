// Package schemagen derives GraphQL schemas from Go types.
//
// A Builder maps a query root type, and optionally a mutation root type, to
// schema types with a mapper.Mapper and assembles every type reachable from
// them into a schema.Schema. The resolvers selected for each field are
// returned alongside the schema so that an executor can resolve it against
// live Go values.
package schemagen

import (
	"context"

	"github.com/segmentio/ksuid"

	"github.com/chirino/graphql-schemagen/customtypes"
	"github.com/chirino/graphql-schemagen/errors"
	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/mapper"
	"github.com/chirino/graphql-schemagen/resolvers"
	"github.com/chirino/graphql-schemagen/schema"
	"github.com/chirino/graphql-schemagen/trace"
	"github.com/chirino/graphql-schemagen/typeref"
)

type Builder struct {
	Config   Config
	Logger   log.Logger
	Tracer   trace.Tracer
	Universe *typeref.Universe
	// Options are applied to the mapper of every build, after the ones
	// derived from Config.
	Options []mapper.Option
}

func New(cfg Config, options ...mapper.Option) *Builder {
	return &Builder{
		Config:   cfg,
		Logger:   log.New(cfg.Log),
		Tracer:   trace.NoopTracer{},
		Universe: typeref.NewUniverse(),
		Options:  options,
	}
}

// Result is a built schema together with the resolvers of its fields.
type Result struct {
	BuildID   string
	Schema    *schema.Schema
	Resolvers resolvers.TypeAndFieldResolver
}

// Resolver returns a resolver that uses the resolvers selected for the
// schema first, then the fallbacks.
func (r *Result) Resolver(fallbacks ...resolvers.Resolver) resolvers.Resolver {
	return resolvers.List(append([]resolvers.Resolver{r.Resolvers}, fallbacks...)...)
}

// BuildFor builds the schema whose query and mutation roots are the types
// of the given values. mutation may be nil.
func (b *Builder) BuildFor(ctx context.Context, query interface{}, mutation interface{}) (*Result, error) {
	u := b.universe()
	var m typeref.Type
	if mutation != nil {
		m = u.TypeOf(mutation)
	}
	return b.Build(ctx, u.TypeOf(query), m)
}

// Build builds the schema whose query root is query and mutation root is
// mutation. mutation may be nil.
func (b *Builder) Build(ctx context.Context, query, mutation typeref.Type) (result *Result, err error) {
	if query == nil {
		return nil, errors.NewBuildError(nil, "a query root type is required")
	}
	id := ksuid.New().String()
	roots := []string{query.String()}
	if mutation != nil {
		roots = append(roots, mutation.String())
	}

	logger := b.logger()
	ctx, finish := b.tracer().TraceBuild(log.ContextWithLogger(ctx, logger), id, roots)
	defer func() { finish(err) }()

	logger.Info("building schema", "build", id, "roots", roots)
	m, err := b.newMapper(ctx, logger)
	if err != nil {
		return nil, err
	}

	from := schema.New()
	if from.EntryPoints[schema.Query], err = b.root(m, query); err != nil {
		return nil, err
	}
	if mutation != nil {
		if from.EntryPoints[schema.Mutation], err = b.root(m, mutation); err != nil {
			return nil, err
		}
	}

	s := schema.New()
	from.AddIfMissing(s)
	if err := s.ResolveTypes(); err != nil {
		return nil, errors.NewBuildError(err, "schema %s has unresolved types", id)
	}
	logger.Info("built schema", "build", id, "types", len(s.Types))
	return &Result{BuildID: id, Schema: s, Resolvers: m.Resolvers()}, nil
}

func (b *Builder) newMapper(ctx context.Context, logger log.Logger) (*mapper.Mapper, error) {
	cfg := b.Config
	u := b.universe()
	options := []mapper.Option{
		mapper.WithNaming(cfg.NamingStrategy()),
		mapper.WithUniverse(u),
		mapper.WithTypeMappers(customtypes.Register(mapper.DefaultTypeMappers(), u)),
		mapper.WithLogger(logger),
		mapper.WithTracer(b.tracer()),
		mapper.WithContext(ctx),
	}
	if cfg.RootPackages != nil {
		options = append(options, mapper.WithRootPackages(cfg.RootPackages...))
	}
	if cfg.InputSuffix != "" {
		options = append(options, mapper.WithInputSuffix(cfg.InputSuffix))
	}
	return mapper.New(append(options, b.Options...)...)
}

func (b *Builder) root(m *mapper.Mapper, t typeref.Type) (schema.NamedType, error) {
	out, err := m.ResolveOutputType(t)
	if err != nil {
		return nil, err
	}
	obj, ok := out.(*schema.Object)
	if !ok {
		return nil, errors.NewBuildError(nil, "root type %s maps to %s %s, not an object", t, out.Kind(), out)
	}
	return obj, nil
}

func (b *Builder) universe() *typeref.Universe {
	if b.Universe == nil {
		b.Universe = typeref.NewUniverse()
	}
	return b.Universe
}

func (b *Builder) logger() log.Logger {
	if b.Logger == nil {
		return log.Discard
	}
	return b.Logger
}

func (b *Builder) tracer() trace.Tracer {
	if b.Tracer == nil {
		return trace.NoopTracer{}
	}
	return b.Tracer
}
