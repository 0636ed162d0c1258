package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_RoleField verifies that every entry produced by a logger
// created with NewLogger carries the "role" field it was constructed with.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("financas-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := logEntry(t, &buf)
	assert.Equal(t, "financas-server", entry["role"])
}

// TestNewLogger_ContainsTimestamp verifies that entries carry a time field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-check")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	entry := logEntry(t, &buf)
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected a time field in the log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is renamed to
// "func" so entries record the function name rather than file:line.
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-check")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNewLogger_GlobalLevelIsDebug verifies that NewLogger lowers the global
// zerolog level to Debug.
func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-check")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger verifies that the child is a distinct instance that
// inherits the parent's context fields.
func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.Output(&buf)
	child.Info().Msg("child message")

	entry := logEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext verifies that FromContext returns the logger attached to
// the context, and never nil when nothing was attached.
func TestFromContext(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
		ctx := zl.WithContext(context.Background())

		l := FromContext(ctx)
		require.NotNil(t, l)

		l.Info().Msg("from context")

		entry := logEntry(t, &buf)
		assert.Equal(t, "ctx-value", entry["ctx-key"])
	})
}

// TestFromRequest verifies that FromRequest returns the request-scoped logger.
func TestFromRequest(t *testing.T) {
	t.Run("no logger attached", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NotNil(t, FromRequest(req))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(zl.WithContext(req.Context()))

		l := FromRequest(req)
		require.NotNil(t, l)

		l.Info().Msg("from request")

		entry := logEntry(t, &buf)
		assert.Equal(t, "req-value", entry["req-key"])
	})
}
