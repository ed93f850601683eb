package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// highScoreID is the primary key of the single high score row.
const highScoreID = 1

// HighScore is the single-row table holding the best score.
type HighScore struct {
	ID        uint `gorm:"primaryKey;autoIncrement:false"`
	Score     int
	UpdatedAt time.Time
}

// RunRow is a finished run as stored in the database.
type RunRow struct {
	Seq        uint   `gorm:"primaryKey;autoIncrement"`
	RunID      string `gorm:"uniqueIndex;size:36"`
	Score      int
	BonusEaten int
	StartedAt  time.Time
	EndedAt    time.Time
}

// GormStore keeps scores in a SQL database through GORM.
type GormStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(path string, log zerolog.Logger) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	log = log.With().Str("store", "sqlite").Str("path", path).Logger()
	return newGormStore(db, log)
}

// OpenPostgres connects to a Postgres database.
func OpenPostgres(dsn string, log zerolog.Logger) (*GormStore, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	log = log.With().Str("store", "postgres").Logger()
	return newGormStore(db, log)
}

func newGormStore(db *gorm.DB, log zerolog.Logger) (*GormStore, error) {
	if err := db.AutoMigrate(&HighScore{}, &RunRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Debug().Msg("Schema migrated")
	return &GormStore{db: db, log: log}, nil
}

func (s *GormStore) Load(ctx context.Context) (int, error) {
	var row HighScore
	err := s.db.WithContext(ctx).First(&row, highScoreID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Info().Msg("No high score row, creating one")
		if err := s.Save(ctx, 0); err != nil {
			return 0, err
		}
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read high score: %w", err)
	}
	return normalize(row.Score), nil
}

func (s *GormStore) Save(ctx context.Context, score int) error {
	row := HighScore{ID: highScoreID, Score: score, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}

func (s *GormStore) RecordRun(ctx context.Context, run RunRecord) error {
	row := RunRow{
		RunID:      run.ID.String(),
		Score:      run.Score,
		BonusEaten: run.BonusEaten,
		StartedAt:  run.StartedAt,
		EndedAt:    run.EndedAt,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

func (s *GormStore) History(ctx context.Context) ([]RunRecord, error) {
	var rows []RunRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read run history: %w", err)
	}

	runs := make([]RunRecord, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.RunID)
		if err != nil {
			return nil, fmt.Errorf("%w: run id %q", ErrCorrupt, row.RunID)
		}
		runs = append(runs, RunRecord{
			ID:         id,
			Score:      row.Score,
			BonusEaten: row.BonusEaten,
			StartedAt:  row.StartedAt,
			EndedAt:    row.EndedAt,
		})
	}
	return runs, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
