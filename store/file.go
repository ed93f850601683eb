package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
)

// MaxHistory is the number of runs kept by the file backend.
const MaxHistory = 50

// fileDocument is the on-disk layout of the file backend.
type fileDocument struct {
	HighScore    int         `json:"highScore"`
	ScoreHistory []RunRecord `json:"scoreHistory"`
}

// FileStore keeps the high score and recent runs in a single JSON file.
type FileStore struct {
	path  string
	log   zerolog.Logger
	mutex sync.Mutex
}

// NewFileStore returns a store backed by path. Nothing is touched on disk
// until the first call.
func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("store", "file").Str("path", path).Logger(),
	}
}

func (s *FileStore) Load(ctx context.Context) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.read()
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info().Msg("No high score file, creating one")
			if err := s.write(fileDocument{ScoreHistory: make([]RunRecord, 0)}); err != nil {
				return 0, err
			}
			return 0, nil
		}
		return 0, err
	}
	return normalize(doc.HighScore), nil
}

func (s *FileStore) Save(ctx context.Context, score int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.readOrEmpty()
	if err != nil {
		return err
	}
	doc.HighScore = score
	return s.write(doc)
}

func (s *FileStore) RecordRun(ctx context.Context, run RunRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.readOrEmpty()
	if err != nil {
		return err
	}
	doc.ScoreHistory = append(doc.ScoreHistory, run)
	if len(doc.ScoreHistory) > MaxHistory {
		doc.ScoreHistory = doc.ScoreHistory[len(doc.ScoreHistory)-MaxHistory:]
	}
	return s.write(doc)
}

func (s *FileStore) History(ctx context.Context) ([]RunRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	doc, err := s.readOrEmpty()
	if err != nil {
		return nil, err
	}
	return doc.ScoreHistory, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) readOrEmpty() (fileDocument, error) {
	doc, err := s.read()
	if err != nil && os.IsNotExist(err) {
		return fileDocument{ScoreHistory: make([]RunRecord, 0)}, nil
	}
	return doc, err
}

// read decodes the file. A bare integer is accepted as a high score with no
// history.
func (s *FileStore) read() (fileDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fileDocument{}, err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err == nil {
		if doc.ScoreHistory == nil {
			doc.ScoreHistory = make([]RunRecord, 0)
		}
		return doc, nil
	}

	if n, err := strconv.Atoi(string(bytes.TrimSpace(data))); err == nil {
		return fileDocument{HighScore: n, ScoreHistory: make([]RunRecord, 0)}, nil
	}

	return fileDocument{}, fmt.Errorf("%w: %s", ErrCorrupt, s.path)
}

// write replaces the file atomically.
func (s *FileStore) write(doc fileDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal high score: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}
