package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
)

// StockService maintains the stock ledger: every quantity change goes
// through an immutable movement record.
type StockService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	txRunner     repository.TxRunner
}

// NewStockService creates a new stock service
func NewStockService(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	txRunner repository.TxRunner,
) *StockService {
	return &StockService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		txRunner:     txRunner,
	}
}

// ApplyMovementInput represents a manual stock movement
type ApplyMovementInput struct {
	ProductID   uuid.UUID
	Type        enum.MovementType
	Quantity    int
	Reason      enum.MovementReason
	Notes       *string
	CreatedByID *uuid.UUID
}

// ApplyMovement records a stock movement and adjusts the product quantity in
// one transaction. Removals clamp the stored quantity at zero while the
// movement keeps the full requested quantity, so the ledger records what was
// asked for even when the counted stock had drifted low.
func (s *StockService) ApplyMovement(ctx context.Context, input *ApplyMovementInput) (*entity.StockMovement, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid movement type")
	}
	if !input.Reason.Valid() {
		return nil, apperror.NewBadRequestError("Invalid movement reason")
	}
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	movement := &entity.StockMovement{
		ProductID:   input.ProductID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Reason:      input.Reason,
		Notes:       input.Notes,
		CreatedByID: input.CreatedByID,
	}

	err = s.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		if err := repos.Movements.Create(ctx, movement); err != nil {
			return err
		}
		return repos.Products.AdjustQuantity(ctx, input.ProductID, input.Type, input.Quantity)
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// GetMovement returns a single movement by ID
func (s *StockService) GetMovement(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error) {
	movement, err := s.movementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, apperror.NewNotFoundError("Stock movement")
	}
	return movement, nil
}

// ListMovements returns the movement history with filters
func (s *StockService) ListMovements(ctx context.Context, params *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	return s.movementRepo.List(ctx, params)
}

// GetLowStockProducts returns active products at or below their reorder point
func (s *StockService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
