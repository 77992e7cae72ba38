package trace

import (
	"context"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type TraceBuildFinishFunc func(error)
type TraceTypeFinishFunc func(error)

type Tracer interface {
	TraceBuild(ctx context.Context, buildID string, roots []string) (context.Context, TraceBuildFinishFunc)
	TraceType(ctx context.Context, typeName string) (context.Context, TraceTypeFinishFunc)
}

// OpenTracingTracer reports builds as spans of Tracer, or of the global
// tracer when Tracer is nil.
type OpenTracingTracer struct {
	Tracer opentracing.Tracer
}

func (t OpenTracingTracer) tracer() opentracing.Tracer {
	if t.Tracer != nil {
		return t.Tracer
	}
	return opentracing.GlobalTracer()
}

func (t OpenTracingTracer) TraceBuild(ctx context.Context, buildID string, roots []string) (context.Context, TraceBuildFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContextWithTracer(ctx, t.tracer(), "GraphQL schema build")
	span.SetTag("graphql.build", buildID)
	span.SetTag("graphql.roots", strings.Join(roots, ","))

	return spanCtx, func(err error) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}

func (t OpenTracingTracer) TraceType(ctx context.Context, typeName string) (context.Context, TraceTypeFinishFunc) {
	span, spanCtx := opentracing.StartSpanFromContextWithTracer(ctx, t.tracer(), "GraphQL type")
	span.SetTag("graphql.type", typeName)

	return spanCtx, func(err error) {
		if err != nil {
			ext.Error.Set(span, true)
			span.SetTag("graphql.error", err.Error())
		}
		span.Finish()
	}
}

func noop(error) {}

type NoopTracer struct{}

func (NoopTracer) TraceBuild(ctx context.Context, buildID string, roots []string) (context.Context, TraceBuildFinishFunc) {
	return ctx, noop
}

func (NoopTracer) TraceType(ctx context.Context, typeName string) (context.Context, TraceTypeFinishFunc) {
	return ctx, noop
}
