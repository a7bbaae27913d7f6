package repository

import (
	"context"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row business settings
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.BusinessSettings, error)
	Update(ctx context.Context, settings *entity.BusinessSettings) error
	Create(ctx context.Context, settings *entity.BusinessSettings) error
}
