// Package storage persists usage statistics and the saved scheme history in
// SQLite through GORM.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"logotint/model"
)

// ErrNotFound is returned when a saved scheme does not exist.
var ErrNotFound = errors.New("not found")

const statsID = "default"

// Store provides persistent storage for usage statistics and saved schemes.
type Store struct {
	db   *gorm.DB
	path string
}

// Config holds database configuration options.
type Config struct {
	Path  string
	Debug bool
}

// DefaultConfig places the database in dataDir.
func DefaultConfig(dataDir string) Config {
	return Config{Path: filepath.Join(dataDir, "logotint.db")}
}

// Open creates the database if needed and runs migrations.
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(DELETE)&_pragma=busy_timeout(5000)", cfg.Path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.UsageStats{}, &model.SavedScheme{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, path: cfg.Path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Stats returns the usage counters. A fresh database reports zeros.
func (s *Store) Stats(ctx context.Context) (model.UsageStats, error) {
	var st model.UsageStats
	err := s.db.WithContext(ctx).Where("id = ?", statsID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UsageStats{ID: statsID}, nil
	}
	if err != nil {
		return model.UsageStats{}, fmt.Errorf("load stats: %w", err)
	}
	return st, nil
}

// RecordColorChange adds n to the changed-colors counter and stamps the
// modification time.
func (s *Store) RecordColorChange(ctx context.Context, n int, at time.Time) (model.UsageStats, error) {
	at = at.UTC()
	row := model.UsageStats{ID: statsID, ColorsChanged: int64(n), LastModified: &at}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"colors_changed": gorm.Expr("colors_changed + ?", n),
			"last_modified":  at,
			"updated_at":     time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return model.UsageStats{}, fmt.Errorf("record color change: %w", err)
	}
	return s.Stats(ctx)
}

// RecordSession counts one editing session.
func (s *Store) RecordSession(ctx context.Context) (model.UsageStats, error) {
	row := model.UsageStats{ID: statsID, Sessions: 1}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"sessions":   gorm.Expr("sessions + ?", 1),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return model.UsageStats{}, fmt.Errorf("record session: %w", err)
	}
	return s.Stats(ctx)
}

// SaveScheme stores an exported envelope under a new ID.
func (s *Store) SaveScheme(ctx context.Context, name string, envelope []byte) (model.SavedScheme, error) {
	sc := model.SavedScheme{
		ID:       uuid.New().String(),
		Name:     name,
		Envelope: string(envelope),
	}
	if err := s.db.WithContext(ctx).Create(&sc).Error; err != nil {
		return model.SavedScheme{}, fmt.Errorf("save scheme: %w", err)
	}
	return sc, nil
}

// ListSchemes returns saved schemes newest first. A limit of zero or less
// returns all of them.
func (s *Store) ListSchemes(ctx context.Context, limit int) ([]model.SavedScheme, error) {
	var out []model.SavedScheme
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list schemes: %w", err)
	}
	return out, nil
}

// GetScheme returns one saved scheme.
func (s *Store) GetScheme(ctx context.Context, id string) (model.SavedScheme, error) {
	var sc model.SavedScheme
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SavedScheme{}, fmt.Errorf("scheme %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.SavedScheme{}, fmt.Errorf("get scheme: %w", err)
	}
	return sc, nil
}

// DeleteScheme removes one saved scheme.
func (s *Store) DeleteScheme(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SavedScheme{})
	if res.Error != nil {
		return fmt.Errorf("delete scheme: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("scheme %s: %w", id, ErrNotFound)
	}
	return nil
}

// PruneSchemes deletes saved schemes created before cutoff and reports how
// many were removed.
func (s *Store) PruneSchemes(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.SavedScheme{})
	if res.Error != nil {
		return 0, fmt.Errorf("prune schemes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
