package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the single business settings row
func (r *settingsRepository) Get(ctx context.Context) (*entity.BusinessSettings, error) {
	var settings entity.BusinessSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

// Create creates the business settings row
func (r *settingsRepository) Create(ctx context.Context, settings *entity.BusinessSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the business settings row
func (r *settingsRepository) Update(ctx context.Context, settings *entity.BusinessSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
