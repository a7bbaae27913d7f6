package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/pkg/pagination"
)

// ErrDuplicateOrderNumber is returned by SaleRepository.Create when the
// order number loses the race against a concurrent insert. Callers allocate
// a fresh number and retry.
var ErrDuplicateOrderNumber = errors.New("order number already exists")

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.SaleStatus
	TerminalID *uuid.UUID
	CustomerID *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string // matches order number
}

// SaleRepository defines the interface for sale data operations. There is no
// delete: sales are permanent records.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Sale, error)
	// LockByID loads the sale with a row lock. Only meaningful inside a
	// transaction; concurrent payment recordings serialize on it.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// UpdateSettlement persists the derived amount_paid and status.
	UpdateSettlement(ctx context.Context, id uuid.UUID, amountPaid int64, status enum.SaleStatus) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleItemRepository defines the interface for sale line item operations
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error)
}

// PaymentRepository defines the interface for payment data operations.
// Payments are append-only.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error)
	List(ctx context.Context, params *pagination.PaginationParams, dateFrom, dateTo *time.Time) ([]entity.Payment, int64, error)
}
