package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesJSONWithRole(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", Options{Level: "debug", Output: &buf})

	l.Debug().Str("path", "config.yml").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "cli", entry["role"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "config.yml", entry["path"])
	assert.Equal(t, "loaded", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New("cli", Options{Level: "warn", Output: &buf})

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New("server", Options{Output: &buf})

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	req := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("from request")
	assert.Contains(t, buf.String(), "from request")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("discarded")
	})
}
