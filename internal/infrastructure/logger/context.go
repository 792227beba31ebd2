package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const (
	loggerKey        contextKey = "logger"
	tenantIDKey      contextKey = "tenant_id"
	correlationIDKey contextKey = "correlation_id"
	jobIDKey         contextKey = "job_id"
)

// WithContext returns a new context carrying the logger
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger carried by ctx, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	return FromContextOr(ctx, zap.NewNop())
}

// FromContextOr returns the logger carried by ctx, or fallback
func FromContextOr(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger
	}
	return fallback
}

// WithTenantID stores the tenant in ctx and returns a logger tagged with it
func WithTenantID(ctx context.Context, logger *zap.Logger, tenantID string) (context.Context, *zap.Logger) {
	return withField(ctx, logger, tenantIDKey, tenantID)
}

// WithCorrelationID stores the correlation id in ctx and returns a logger tagged with it
func WithCorrelationID(ctx context.Context, logger *zap.Logger, correlationID string) (context.Context, *zap.Logger) {
	return withField(ctx, logger, correlationIDKey, correlationID)
}

// WithJobID stores the sync job id in ctx and returns a logger tagged with it
func WithJobID(ctx context.Context, logger *zap.Logger, jobID string) (context.Context, *zap.Logger) {
	return withField(ctx, logger, jobIDKey, jobID)
}

func withField(ctx context.Context, logger *zap.Logger, key contextKey, value string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, key, value)
	enriched := logger.With(zap.String(string(key), value))
	return WithContext(ctx, enriched), enriched
}

// GetTenantID returns the tenant stored in ctx
func GetTenantID(ctx context.Context) string {
	return stringValue(ctx, tenantIDKey)
}

// GetCorrelationID returns the correlation id stored in ctx
func GetCorrelationID(ctx context.Context) string {
	return stringValue(ctx, correlationIDKey)
}

// GetJobID returns the sync job id stored in ctx
func GetJobID(ctx context.Context) string {
	return stringValue(ctx, jobIDKey)
}

func stringValue(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
