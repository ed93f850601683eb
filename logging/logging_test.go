package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, closer, err := New(Config{Level: "warn", Out: &buf})
	require.NoError(t, err)
	defer closer.Close()

	log.Info().Msg("hidden message")
	log.Warn().Int("score", 12).Msg("visible message")

	assert.NotContains(t, buf.String(), "hidden message")
	assert.Contains(t, buf.String(), "visible message")
	assert.Contains(t, buf.String(), "score=")
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")
	var buf bytes.Buffer

	log, closer, err := New(Config{Level: "info", File: path, Out: &buf})
	require.NoError(t, err)

	log.Info().Str("state", "playing").Msg("run started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"run started"`)
	assert.Contains(t, string(data), `"state":"playing"`)
}

func TestNew_BadFilePath(t *testing.T) {
	_, closer, err := New(Config{File: filepath.Join(t.TempDir(), "missing", "snake.log")})
	require.Error(t, err)
	assert.NotNil(t, closer)
}
