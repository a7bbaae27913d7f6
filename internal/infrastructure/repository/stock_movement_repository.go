package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
)

type stockMovementRepository struct {
	db *gorm.DB
}

// NewStockMovementRepository creates a new stock movement repository
func NewStockMovementRepository(db *gorm.DB) domainRepo.StockMovementRepository {
	return &stockMovementRepository{db: db}
}

func (r *stockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

func (r *stockMovementRepository) CreateBatch(ctx context.Context, movements []entity.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&movements).Error
}

func (r *stockMovementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error) {
	var movement entity.StockMovement
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&movement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &movement, err
}

func (r *stockMovementRepository) List(ctx context.Context, params *domainRepo.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	var movements []entity.StockMovement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockMovement{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	if params.Reason != nil {
		query = query.Where("reason = ?", *params.Reason)
	}

	if params.DateFrom != nil {
		query = query.Where("created_at >= ?", *params.DateFrom)
	}

	if params.DateTo != nil {
		query = query.Where("created_at < ?", *params.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").
		Order("created_at DESC").
		Find(&movements).Error

	return movements, total, err
}
