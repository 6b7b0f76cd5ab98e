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

// swapGlobal installs an observed logger for the duration of a test
func swapGlobal(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	old := globalLogger
	globalLogger = zap.New(core)
	t.Cleanup(func() { globalLogger = old })
	return logs
}

func TestWithContextAddsFields(t *testing.T) {
	logs := swapGlobal(t)

	ctx := context.WithValue(context.Background(), DatasetKey, "train.csv")
	ctx = context.WithValue(ctx, StageKey, "fit")
	WithContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "train.csv", fields["dataset"])
	assert.Equal(t, "fit", fields["stage"])
}

func TestWithContextIgnoresMissingKeys(t *testing.T) {
	logs := swapGlobal(t)

	WithContext(context.Background()).Info("bare")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Context)
}

func TestLevelHelpers(t *testing.T) {
	logs := swapGlobal(t)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestWithAddsFields(t *testing.T) {
	logs := swapGlobal(t)

	With(zap.String("component", "pipeline")).Info("tagged")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pipeline", entries[0].ContextMap()["component"])
}

func TestInvalidLevelRejected(t *testing.T) {
	_, err := newLogger(Config{Level: "verbose", Encoding: "json"})
	assert.Error(t, err)
}
