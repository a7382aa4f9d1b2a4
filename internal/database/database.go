package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/gpsr-commands/internal/grammar"
	"github.com/Conceptual-Machines/gpsr-commands/internal/logger"
	"github.com/Conceptual-Machines/gpsr-commands/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ErrNoDatabaseURL is returned by Connect when no DSN is configured
var ErrNoDatabaseURL = errors.New("database url not configured")

// Connect opens a postgres connection
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, ErrNoDatabaseURL
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Info("Database connected", nil)
	return db, nil
}

// Migrate creates or updates the example table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Example{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// ExampleRepository stores generated examples in postgres
type ExampleRepository struct {
	db *gorm.DB
}

func NewExampleRepository(db *gorm.DB) *ExampleRepository {
	return &ExampleRepository{db: db}
}

// Add inserts one example
func (r *ExampleRepository) Add(ctx context.Context, ex grammar.Example) error {
	record := models.NewExample(ex)
	if requestID, ok := logger.RequestIDFromContext(ctx); ok {
		record.RequestID = requestID
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// All returns every stored example in insertion order
func (r *ExampleRepository) All(ctx context.Context) ([]grammar.Example, error) {
	var records []models.Example
	if err := r.db.WithContext(ctx).Order("id asc").Find(&records).Error; err != nil {
		return nil, err
	}

	examples := make([]grammar.Example, len(records))
	for i := range records {
		examples[i] = records[i].ToGrammar()
	}
	return examples, nil
}

// CountByIntent returns the number of stored examples per intent key
func (r *ExampleRepository) CountByIntent(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		IntentKey string
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Example{}).
		Select("intent_key, count(*) as count").
		Group("intent_key").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.IntentKey] = row.Count
	}
	return counts, nil
}
