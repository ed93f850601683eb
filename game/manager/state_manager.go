package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classic-snake/game/types"
	"classic-snake/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ScoreStore is the persistence the tracker needs.
type ScoreStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
	RecordRun(ctx context.Context, run store.RunRecord) error
}

// StateManager tracks the running score, the persisted high score and the
// session's finished runs.
type StateManager struct {
	store     ScoreStore
	log       zerolog.Logger
	highScore int

	runID      uuid.UUID
	score      int
	bonusEaten int
	startHigh  int // High score when the current run began
	startedAt  time.Time
	finished   bool

	gamesPlayed int
	sessionBest int
}

// NewStateManager loads the high score once. A corrupt store is returned as
// an error so the caller can stop before the game starts.
func NewStateManager(ctx context.Context, st ScoreStore, log zerolog.Logger) (*StateManager, error) {
	highScore, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load high score: %w", err)
	}
	log.Info().Int("highScore", highScore).Msg("High score loaded")

	return &StateManager{
		store:     st,
		log:       log,
		highScore: highScore,
		finished:  true,
	}, nil
}

// StartRun resets the score for a new run.
func (sm *StateManager) StartRun(now time.Time) {
	sm.runID = uuid.New()
	sm.score = 0
	sm.bonusEaten = 0
	sm.startHigh = sm.highScore
	sm.startedAt = now
	sm.finished = false
}

// AddFood credits an eaten food and returns the new score.
func (sm *StateManager) AddFood(food types.Food) int {
	sm.score += food.Points()
	if food.Bonus {
		sm.bonusEaten++
	}
	return sm.score
}

// FinishRun closes the current run. It persists the score when it beats
// the high score, reading the stored value back as the new high score, and
// records the run in the history. Calls after the first for a run do
// nothing.
func (sm *StateManager) FinishRun(ctx context.Context, now time.Time) error {
	if sm.finished {
		return nil
	}
	sm.finished = true
	sm.gamesPlayed++
	if sm.score > sm.sessionBest {
		sm.sessionBest = sm.score
	}

	log := sm.log.With().Str("run", sm.runID.String()).Int("score", sm.score).Logger()

	var errs []error
	if sm.score > sm.highScore {
		if err := sm.store.Save(ctx, sm.score); err != nil {
			errs = append(errs, fmt.Errorf("failed to save high score: %w", err))
		} else if stored, err := sm.store.Load(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to reload high score: %w", err))
		} else {
			sm.highScore = stored
			log.Info().Int("highScore", stored).Msg("New high score")
		}
	}

	run := store.RunRecord{
		ID:         sm.runID,
		Score:      sm.score,
		BonusEaten: sm.bonusEaten,
		StartedAt:  sm.startedAt,
		EndedAt:    now,
	}
	if err := sm.store.RecordRun(ctx, run); err != nil {
		errs = append(errs, fmt.Errorf("failed to record run: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	log.Debug().Int("gamesPlayed", sm.gamesPlayed).Msg("Run finished")
	return nil
}

// IsNewHighScore reports whether the current run beats the high score that
// was standing when it started.
func (sm *StateManager) IsNewHighScore() bool {
	return sm.score > sm.startHigh
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetRunID() uuid.UUID {
	return sm.runID
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) GetSessionBest() int {
	return sm.sessionBest
}
