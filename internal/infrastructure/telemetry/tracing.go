// Package telemetry provides OpenTelemetry tracing and metrics for sync operations.
// Spans and instruments go through the global otel providers, which are no-ops until
// the host installs real ones.
package telemetry

import (
	"context"
	"fmt"

	"github.com/ccasync/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// TracerName is the tracer name for service spans
	TracerName = "ccasync"
)

// SpanOption is a function that configures span start options
type SpanOption func(*spanOptions)

type spanOptions struct {
	attributes []attribute.KeyValue
}

// WithAttribute adds an attribute to the span
func WithAttribute(key string, value any) SpanOption {
	return func(opts *spanOptions) {
		opts.attributes = append(opts.attributes, toAttribute(key, value))
	}
}

// StartSpan starts a new span with the given name.
// The caller is responsible for calling span.End() when the operation completes.
//
//	ctx, span := telemetry.StartSpan(ctx, "sync_job.start")
//	defer span.End()
func StartSpan(ctx context.Context, spanName string, opts ...SpanOption) (context.Context, trace.Span) {
	options := &spanOptions{}
	for _, opt := range opts {
		opt(options)
	}

	tracer := otel.GetTracerProvider().Tracer(TracerName)

	startOpts := []trace.SpanStartOption{
		trace.WithSpanKind(trace.SpanKindInternal),
	}
	if len(options.attributes) > 0 {
		startOpts = append(startOpts, trace.WithAttributes(options.attributes...))
	}

	return tracer.Start(ctx, spanName, startOpts...)
}

// StartServiceSpan starts a span named {service}.{method}, e.g. "sync_job.complete".
func StartServiceSpan(ctx context.Context, service, method string, opts ...SpanOption) (context.Context, trace.Span) {
	return StartSpan(ctx, fmt.Sprintf("%s.%s", service, method), opts...)
}

// StartSyncJobSpan starts a "sync_job.{action}" span tagged with the tenant, job and action.
// A nil jobID leaves the job_id attribute off, for operations that create the job.
func StartSyncJobSpan(ctx context.Context, action, tenantID string, jobID uuid.UUID) (context.Context, trace.Span) {
	opts := []SpanOption{
		WithAttribute(SpanAttrTenantID, tenantID),
		WithAttribute(SpanAttrAction, action),
	}
	if jobID != uuid.Nil {
		opts = append(opts, WithAttribute(SpanAttrJobID, jobID))
	}
	return StartServiceSpan(ctx, "sync_job", action, opts...)
}

// SetAttributes adds alternating key/value pairs to span. Pairs whose key is not a
// string are skipped.
func SetAttributes(span trace.Span, keyValues ...any) {
	if span == nil {
		return
	}

	attrs := make([]attribute.KeyValue, 0, len(keyValues)/2)
	for i := 0; i+1 < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, toAttribute(key, keyValues[i+1]))
	}

	span.SetAttributes(attrs...)
}

// RecordError records err on the span and sets the span status to error.
// Domain errors also set the error_code attribute.
func RecordError(span trace.Span, err error, opts ...trace.EventOption) {
	if span == nil || err == nil {
		return
	}
	if domainErr, ok := shared.AsError(err); ok {
		span.SetAttributes(attribute.String(SpanAttrErrorCode, domainErr.Code))
	}
	span.RecordError(err, opts...)
	span.SetStatus(codes.Error, err.Error())
}

// SetOK marks the span as successful
func SetOK(span trace.Span) {
	if span == nil {
		return
	}
	span.SetStatus(codes.Ok, "")
}

// GetTraceID returns the trace ID of the span in ctx, or "" when there is none
func GetTraceID(ctx context.Context) string {
	if traceID := trace.SpanFromContext(ctx).SpanContext().TraceID(); traceID.IsValid() {
		return traceID.String()
	}
	return ""
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}

// Span attribute keys for sync operations
const (
	SpanAttrTenantID     = "tenant_id"
	SpanAttrJobID        = "job_id"
	SpanAttrJobType      = "job_type"
	SpanAttrJobStatus    = "job_status"
	SpanAttrAction       = "action"
	SpanAttrErrorCode    = "error_code"
	SpanAttrTotalRecords = "total_records"
)
