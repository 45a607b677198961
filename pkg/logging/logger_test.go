package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestFields(t *testing.T) {
	f := LogField("key", 42)
	assert.Equal(t, "key", f.Key)
	assert.Equal(t, 42, f.Value)

	f = StringField("check", "number")
	assert.Equal(t, "number", f.Value)

	f = BoolField("passed", false)
	assert.Equal(t, false, f.Value)

	f = ErrorField(assert.AnError)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, assert.AnError.Error(), f.Value)

	f = ErrorField(nil)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNullLogger(t *testing.T) {
	var l Logger = NullLogger{}

	l.Debug("debug", StringField("k", "v"))
	l.Info("info")
	l.Warn("warn")
	l.Error("error", ErrorField(assert.AnError))

	child := l.WithFields(LogField("k", "v"))
	_, ok := child.(NullLogger)
	assert.True(t, ok)
	assert.NoError(t, child.Close())
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	l.Debug("d", StringField("check", "array"))
	l.Info("i")
	l.Warn("w")
	l.Error("e", BoolField("passed", false))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "array", entries[0].ContextMap()["check"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, false, entries[3].ContextMap()["passed"])
}

func TestZapLogger_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core)).WithFields(StringField("component", "engine"))

	l.Info("hello")
	l.Debug("filtered out")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].ContextMap()["component"])
}

func TestNewZapLogger_NilUsesNop(t *testing.T) {
	l := NewZapLogger(nil)
	assert.NotPanics(t, func() { l.Info("dropped") })
}

func TestNewProductionLogger(t *testing.T) {
	l, err := NewProductionLogger(LevelWarn)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.True(t, l.logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.logger.Core().Enabled(zapcore.InfoLevel))
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, zapLevel(LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, zapLevel(LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, zapLevel(LevelError))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(LogLevel(42)))
}
