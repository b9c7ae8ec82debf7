package repositories

import (
	"context"

	"gorm.io/gorm"
	"wanderly/internal/models/db_models"
)

type GenerationLogRepository interface {
	Insert(ctx context.Context, entry *db_models.GenerationLog) error
}

type generationLogRepository struct {
	db *gorm.DB
}

func NewGenerationLogRepository(db *gorm.DB) GenerationLogRepository {
	return &generationLogRepository{db: db}
}

// MigrateGenerationLog creates or updates the generation_logs table.
func MigrateGenerationLog(db *gorm.DB) error {
	return db.AutoMigrate(&db_models.GenerationLog{})
}

func (r *generationLogRepository) Insert(ctx context.Context, entry *db_models.GenerationLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// noopGenerationLogRepository is used when no POSTGRES_URL is configured.
type noopGenerationLogRepository struct{}

func NewNoopGenerationLogRepository() GenerationLogRepository {
	return noopGenerationLogRepository{}
}

func (noopGenerationLogRepository) Insert(context.Context, *db_models.GenerationLog) error {
	return nil
}
