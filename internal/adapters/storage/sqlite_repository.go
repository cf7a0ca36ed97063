package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"turmas/internal/domain"
	"turmas/internal/logging"
	"turmas/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.SlotRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SlotRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the turmas logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("TURMAS_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and creates if needed) the slot database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode so a TUI and a CLI command can share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SlotModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate slot schema: %w", err)
		}
	}

	logging.Logger.Debug("Slot database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Get returns the value stored under key
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	var model SlotModel
	err := withRetry(ctx, maxRetries, func() error {
		return r.db.WithContext(ctx).Where("slot_key = ?", key).First(&model).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", domain.ErrSlotEmpty, key)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return model.Value, nil
}

// Set stores value under key, replacing any previous value
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	model := SlotModel{
		Key:      key,
		Revision: uuid.New().String(),
		Value:    value,
	}
	err := withRetry(ctx, maxRetries, func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "revision", "updated_at"}),
		}).Create(&model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	logging.Logger.Debug("Slot written", "key", key, "revision", model.Revision, "bytes", len(value))
	return nil
}

// Delete removes key. Deleting an empty slot fails with domain.ErrSlotEmpty.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	var affected int64
	err := withRetry(ctx, maxRetries, func() error {
		result := r.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&SlotModel{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrSlotEmpty, key)
	}
	return nil
}

// List returns every stored slot ordered by key
func (r *SQLiteRepository) List(ctx context.Context) ([]ports.SlotRecord, error) {
	var models []SlotModel
	err := withRetry(ctx, maxRetries, func() error {
		return r.db.WithContext(ctx).Order("slot_key").Find(&models).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	records := make([]ports.SlotRecord, 0, len(models))
	for _, m := range models {
		records = append(records, slotModelToRecord(m))
	}
	return records, nil
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withRetry retries fn while sqlite reports the database as busy or locked
func withRetry(ctx context.Context, retries int, fn func() error) error {
	var attempt int
	linear := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return time.Duration(attempt) * 50 * time.Millisecond, false
	})
	backoff := retry.WithMaxRetries(uint64(retries), linear)
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn()
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Slot database busy", "code", sqliteErr.Code)
			return retry.RetryableError(err)
		}
		return err
	})
}
