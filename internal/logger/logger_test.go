package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry), buf.String())
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	configureGlobals()
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_Globals(t *testing.T) {
	require.NotNil(t, NewLogger("server"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestNewClientLogger(t *testing.T) {
	t.Run("appends to the log file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")

		NewClientLogger("client", dir).Info().Msg("first")
		NewClientLogger("client", dir).Info().Msg("second")

		data, err := os.ReadFile(filepath.Join(dir, ClientLogFileName))
		require.NoError(t, err)

		buf := bytes.NewBuffer(data)
		assert.Equal(t, 2, bytes.Count(data, []byte("\n")))
		assert.Equal(t, "second", lastEntry(t, buf)["message"])
	})

	t.Run("falls back when the directory cannot be created", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		l := NewClientLogger("client", filepath.Join(blocker, "logs"))

		assert.NotNil(t, l)
	})
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child")
	assert.Equal(t, "client", lastEntry(t, &buf)["role"])

	parent.WithComponent("sync").Info().Msg("component")
	entry := lastEntry(t, &buf)
	assert.Equal(t, "sync", entry["component"])
	assert.Equal(t, "client", entry["role"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, &buf), "component")
}

func TestFromContext(t *testing.T) {
	t.Run("without a logger", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("ignored") })
	})

	t.Run("with a logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := newLogger(&buf, "client").WithContext(context.Background())

		FromContext(ctx).Info().Str("func", "sync").Msg("from context")

		entry := lastEntry(t, &buf)
		assert.Equal(t, "client", entry["role"])
		assert.Equal(t, "from context", entry["message"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("request_id", "abc").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "abc", lastEntry(t, &buf)["request_id"])
}
