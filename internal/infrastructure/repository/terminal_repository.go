package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
)

type terminalRepository struct {
	db *gorm.DB
}

// NewTerminalRepository creates a new terminal repository
func NewTerminalRepository(db *gorm.DB) domainRepo.TerminalRepository {
	return &terminalRepository{db: db}
}

func (r *terminalRepository) Create(ctx context.Context, terminal *entity.Terminal) error {
	return r.db.WithContext(ctx).Create(terminal).Error
}

func (r *terminalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error) {
	var terminal entity.Terminal
	err := r.db.WithContext(ctx).First(&terminal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &terminal, err
}

func (r *terminalRepository) GetByName(ctx context.Context, name string) (*entity.Terminal, error) {
	var terminal entity.Terminal
	err := r.db.WithContext(ctx).First(&terminal, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &terminal, err
}

func (r *terminalRepository) Update(ctx context.Context, terminal *entity.Terminal) error {
	return r.db.WithContext(ctx).Save(terminal).Error
}

func (r *terminalRepository) List(ctx context.Context, activeOnly bool) ([]entity.Terminal, error) {
	var terminals []entity.Terminal
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Find(&terminals).Error
	return terminals, err
}
