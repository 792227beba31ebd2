package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		log := zap.NewExample()
		ctx := WithContext(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("falls back to given logger", func(t *testing.T) {
		fallback := zap.NewExample()
		assert.Same(t, fallback, FromContextOr(context.Background(), fallback))
	})
}

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	ctx, log := WithTenantID(context.Background(), base, "clean-power-sf")
	ctx, log = WithCorrelationID(ctx, log, "0b5c7c7e-9f8e-4a52-a3ab-1d2b8f1c6d4e")
	ctx, _ = WithJobID(ctx, log, "job-1")

	assert.Equal(t, "clean-power-sf", GetTenantID(ctx))
	assert.Equal(t, "0b5c7c7e-9f8e-4a52-a3ab-1d2b8f1c6d4e", GetCorrelationID(ctx))
	assert.Equal(t, "job-1", GetJobID(ctx))

	FromContext(ctx).Info("processing")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "clean-power-sf", fields["tenant_id"])
	assert.Equal(t, "0b5c7c7e-9f8e-4a52-a3ab-1d2b8f1c6d4e", fields["correlation_id"])
	assert.Equal(t, "job-1", fields["job_id"])
}

func TestContextFields_Missing(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTenantID(ctx))
	assert.Empty(t, GetCorrelationID(ctx))
	assert.Empty(t, GetJobID(ctx))
}
