package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check
var _ Store = (*FileStore)(nil)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "score.dat")
	return NewFileStore(path, zerolog.Nop()), path
}

func TestFileStore_LoadMissingCreatesZero(t *testing.T) {
	s, path := newTestFileStore(t)

	score, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	_, err = os.Stat(path)
	assert.NoError(t, err, "store should be created on first load")
}

func TestFileStore_SaveThenLoad(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, 12))

	score, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, score)

	reopened := NewFileStore(s.path, zerolog.Nop())
	score, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, score)
}

func TestFileStore_CorruptFile(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("\x80\x04K\x0c."), 0644))

	_, err := s.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupt)

	err = s.Save(context.Background(), 3)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStore_BareIntegerFile(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte("27\n"), 0644))

	score, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 27, score)
}

func TestFileStore_NegativeScoreIsClamped(t *testing.T) {
	s, path := newTestFileStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"highScore": -4}`), 0644))

	score, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestFileStore_RecordRunKeepsHighScore(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, 8))

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	run := RunRecord{ID: uuid.New(), Score: 8, BonusEaten: 1, StartedAt: start, EndedAt: start.Add(time.Minute)}
	require.NoError(t, s.RecordRun(ctx, run))

	history, err := s.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, run.ID, history[0].ID)
	assert.Equal(t, 8, history[0].Score)
	assert.True(t, run.EndedAt.Equal(history[0].EndedAt))

	score, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, score)
}

func TestFileStore_HistoryIsCapped(t *testing.T) {
	s, _ := newTestFileStore(t)
	ctx := context.Background()

	for i := 0; i < MaxHistory+5; i++ {
		require.NoError(t, s.RecordRun(ctx, RunRecord{ID: uuid.New(), Score: i}))
	}

	history, err := s.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, MaxHistory)
	assert.Equal(t, 5, history[0].Score)
	assert.Equal(t, MaxHistory+4, history[len(history)-1].Score)
}
