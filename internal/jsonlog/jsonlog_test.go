package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes entries as JSON lines", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)

		l.PrintInfo("server started", map[string]string{"addr": ":4000", "env": "development"})

		var e entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
		assert.Equal(t, "INFO", e.Level)
		assert.Equal(t, "server started", e.Message)
		assert.Equal(t, ":4000", e.Properties["addr"])
		assert.Empty(t, e.Trace)
	})

	t.Run("suppresses entries below the minimum level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelError)

		l.PrintInfo("quiet", nil)
		assert.Zero(t, buf.Len())

		l.PrintError(errors.New("boom"), nil)
		assert.NotZero(t, buf.Len())
	})

	t.Run("error entries carry a stack trace", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)

		l.PrintError(errors.New("boom"), nil)

		var e entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
		assert.Equal(t, "ERROR", e.Level)
		assert.NotEmpty(t, e.Trace)
	})

	t.Run("Write records at the ERROR level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)

		n, err := l.Write([]byte("http: panic serving"))
		require.NoError(t, err)
		assert.Equal(t, buf.Len(), n)

		var e entry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
		assert.Equal(t, "ERROR", e.Level)
		assert.Equal(t, "http: panic serving", e.Message)
	})

	t.Run("LevelOff silences everything", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelOff)

		l.PrintError(errors.New("boom"), nil)
		assert.Zero(t, buf.Len())
	})
}
