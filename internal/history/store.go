// Package history persists finished analyses. The engine only writes; reads
// exist for operators and tests.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/spigell/cv-scorer/internal/analyzer"
	"github.com/spigell/cv-scorer/internal/cache"
	"github.com/spigell/cv-scorer/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store writes analysis records through gorm.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open connects to driver/dsn and migrates the schema.
func Open(driver, dsn string, debug bool, logger *zap.Logger) (*Store, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite, "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported history driver %q", driver)
	}

	level := gormlogger.Silent
	if debug {
		level = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	return New(db, logger)
}

// New wraps an open connection and migrates the schema.
func New(db *gorm.DB, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(&AnalysisRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Record stores report. The analysis ID becomes the primary key when it is a
// valid uuid.
func (s *Store) Record(ctx context.Context, req analyzer.Request, report *analyzer.Report) error {
	if report == nil {
		return fmt.Errorf("record analysis: nil report")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	id, err := uuid.Parse(report.Metadata.AnalysisID)
	if err != nil {
		id = uuid.New()
	}

	rec := &AnalysisRecord{
		ID:         id,
		CacheKey:   cache.Key(req.CVText, req.Industry, req.Role, req.Generic, req.JobDescription),
		Score:      report.Score,
		JobFit:     report.JobFitScore,
		MatchType:  report.Metadata.MatchType,
		Industry:   req.Industry,
		Role:       req.Role,
		Generic:    req.Generic,
		AIEnhanced: report.Metadata.AIEnhanced,
		FromCache:  report.Metadata.FromCache,
		Fallback:   report.Metadata.Fallback,
		Report:     string(payload),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to create analysis record: %w", err)
	}

	s.logger.Debug("analysis recorded", logger.AnalysisID(id.String()), zap.Int("score", rec.Score))
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	var out []AnalysisRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
