package logger_test

import (
	"catconnect/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("requestId", "abc"))

	logger.Info(ctx, "business registered", zap.String("permit", "P-1"))
	logger.Warn(ctx, "fallback dispatch")

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0]
	require.Equal(t, "business registered", first.Message)
	require.Equal(t, "abc", first.ContextMap()["requestId"])
	require.Equal(t, "P-1", first.ContextMap()["permit"])
	require.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestSlog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("river started", "queues", 1)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "river started", logs.All()[0].Message)
}
