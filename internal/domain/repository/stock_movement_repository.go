package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/pkg/pagination"
)

// MovementFilterParams contains filtering parameters for movement queries
type MovementFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	Type       *enum.MovementType
	Reason     *enum.MovementReason
	DateFrom   *time.Time
	DateTo     *time.Time
}

// StockMovementRepository defines the interface for stock movement data
// operations. Movements are append-only: there is no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	CreateBatch(ctx context.Context, movements []entity.StockMovement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error)
	List(ctx context.Context, params *MovementFilterParams) ([]entity.StockMovement, int64, error)
}
