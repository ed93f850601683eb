// Package store persists the high score and the history of finished runs.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classic-snake/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrCorrupt is returned when persisted state cannot be decoded.
	ErrCorrupt = errors.New("high score store is corrupt")
	// ErrUnknownBackend is returned for an unsupported store type.
	ErrUnknownBackend = errors.New("unknown store type")
)

// RunRecord describes one finished run.
type RunRecord struct {
	ID         uuid.UUID `json:"id"`
	Score      int       `json:"score"`
	BonusEaten int       `json:"bonusEaten"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
}

// Store is implemented by every high score backend.
type Store interface {
	// Load returns the persisted high score. A missing store is created
	// holding 0.
	Load(ctx context.Context) (int, error)
	// Save persists a new high score.
	Save(ctx context.Context, score int) error
	// RecordRun appends a finished run to the history.
	RecordRun(ctx context.Context, run RunRecord) error
	// History returns recorded runs, oldest first.
	History(ctx context.Context) ([]RunRecord, error)
	Close() error
}

// New creates a store backend based on configuration
func New(cfg config.StoreConfig, log zerolog.Logger) (Store, error) {
	switch cfg.Type {
	case "file":
		return NewFileStore(cfg.Path, log), nil
	case "sqlite":
		s, err := OpenSQLite(cfg.Path, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres":
		s, err := OpenPostgres(cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Type)
	}
}

// normalize clamps values a backend cannot meaningfully hold.
func normalize(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
