// Package logging builds the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config controls where and how much the game logs.
type Config struct {
	Level string
	File  string    // Optional log file, appended to
	Out   io.Writer // Console output, os.Stderr when nil
}

// New creates the logger. The returned closer releases the log file and is
// never nil.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339},
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("failed to open log file: %w", err)
		}
		writers = append(writers, f)
		closer = f
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
