package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithLevel(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		l := NewLoggerWithLevel("debug")
		require.NotNil(t, l)
		l.Debug("debug message")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		l := NewLoggerWithLevel("verbose")
		require.NotNil(t, l)
		l.Info("still works")
	})

	t.Run("empty level falls back to info", func(t *testing.T) {
		l := NewLoggerWithLevel("")
		require.NotNil(t, l)
	})
}

func TestWithField(t *testing.T) {
	l := NewLogger()
	child := l.WithField("component", "test")
	require.NotNil(t, child)
	// Parent logger must not be mutated by derived loggers
	assert.NotSame(t, l, child)
	child.Info("message with field")
}

func TestWithFields(t *testing.T) {
	l := NewLogger()
	child := l.WithFields(map[string]interface{}{
		"a": 1,
		"b": "two",
	})
	require.NotNil(t, child)
	assert.NotSame(t, l, child)
	child.Warn("message with fields")
}
