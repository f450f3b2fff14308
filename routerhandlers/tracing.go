package routerhandlers

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.25.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/strandhttp/strand/router"
)

// TracingConfig configures the OpenTelemetry tracing wrapper behaviour.
type TracingConfig struct {
	// TracerProvider supplies the tracer. Defaults to the global
	// provider.
	TracerProvider oteltrace.TracerProvider

	// Propagator extracts the incoming trace context from request
	// headers. Defaults to the global propagator.
	Propagator propagation.TextMapPropagator

	// TracerName identifies the instrumentation scope. Defaults to
	// "strand".
	TracerName string

	// SpanName formats the span name for a request. Defaults to
	// "METHOD path".
	SpanName func(r *http.Request) string

	// Filter skips tracing for requests it returns true for.
	Filter func(r *http.Request) bool
}

// Tracing wraps a handler, typically the router itself, with an
// OpenTelemetry server span per request. The span context is attached
// to the request before the pipeline runs, so handlers can start child
// spans from r.Context(). The response status code is recorded on span
// end; 5xx marks the span as errored.
//
// This is an outer wrapper rather than a chain middleware because a
// chain participant cannot replace the request context seen by later
// steps.
func Tracing(next http.Handler, cfg TracingConfig) http.Handler {
	provider := cfg.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	propagator := cfg.Propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}

	tracerName := cfg.TracerName
	if tracerName == "" {
		tracerName = "strand"
	}

	spanName := cfg.SpanName
	if spanName == nil {
		spanName = func(r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}
	}

	tracer := provider.Tracer(tracerName)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.Filter != nil && cfg.Filter(r) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

		attributes := []attribute.KeyValue{
			semconv.HTTPRequestMethodKey.String(r.Method),
			semconv.URLPathKey.String(r.URL.Path),
			semconv.ServerAddressKey.String(r.Host),
		}
		if q := r.URL.RawQuery; q != "" {
			attributes = append(attributes, semconv.URLQueryKey.String(q))
		}

		ctx, span := tracer.Start(ctx, spanName(r),
			oteltrace.WithAttributes(attributes...),
			oteltrace.WithSpanKind(oteltrace.SpanKindServer),
		)
		defer span.End()

		rec := router.NewRecorder(w)
		next.ServeHTTP(rec, r.WithContext(ctx))

		status := rec.Status()
		span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		} else {
			span.SetStatus(codes.Ok, "")
		}
	})
}
