package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLoggerWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.With(String("component", "test")).Info("chart generated",
		String("kind", "ziwei"),
		Int("ming_gong", 3),
		Error(errors.New("archive down")),
	)

	line := buf.Bytes()
	assert.Equal(t, "chart generated", gjson.GetBytes(line, "message").String())
	assert.Equal(t, "ziwei", gjson.GetBytes(line, "kind").String())
	assert.Equal(t, int64(3), gjson.GetBytes(line, "ming_gong").Int())
	assert.Equal(t, "archive down", gjson.GetBytes(line, "error").String())
	assert.Equal(t, "test", gjson.GetBytes(line, "component").String())
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&Config{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	l.Info("dropped")
	assert.Zero(t, buf.Len())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestLoggerInvalidLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud"})
	assert.Error(t, err)
}
