package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	for _, level := range []int{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
		parsed, err := ParseLogLevel(LogLevelToString(level))
		require.Nil(t, err)
		require.Equal(t, level, parsed)
	}
	parsed, err := ParseLogLevel("warn")
	require.Nil(t, err)
	require.Equal(t, WarnLevel, parsed)
	_, err = ParseLogLevel("loud")
	require.NotNil(t, err)
}

func TestToZapLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ToZapLevel(TraceLevel))
	require.Equal(t, zapcore.InfoLevel, ToZapLevel(InfoLevel))
	require.Equal(t, zapcore.ErrorLevel, ToZapLevel(ErrorLevel))
}

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := SetLogger(zap.New(core))
	Logger().Info("hello")
	Logger().Debug("ignored")
	restore()
	Logger().Info("discarded")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "hello", logs.All()[0].Message)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(InfoLevel, "xml")
	require.NotNil(t, err)
	l, err := New(DebugLevel, "json")
	require.Nil(t, err)
	require.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
