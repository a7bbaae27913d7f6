package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/internal/domain/settlement"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// orderNumberAttempts bounds the retry loop for order number collisions.
// With six random digits a second collision in a row is vanishingly rare.
const orderNumberAttempts = 5

// SaleService handles checkout: creating sales with their line items,
// stock movements and inline payments as one atomic unit.
type SaleService struct {
	saleRepo repository.SaleRepository
	txRunner repository.TxRunner
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, txRunner repository.TxRunner) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		txRunner: txRunner,
	}
}

// SaleItemInput represents one line of a checkout. UnitPrice is the price
// charged at the till, in cents; it is stored as-is and never re-read from
// the product later.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice int64
}

// SalePaymentInput represents a payment tendered during checkout
type SalePaymentInput struct {
	Amount     int64
	Method     enum.PaymentMethod
	TerminalID *uuid.UUID
	Reference  *string
}

// CreateSaleInput represents a checkout request
type CreateSaleInput struct {
	TerminalID  uuid.UUID
	CustomerID  *uuid.UUID
	Notes       *string
	CreatedByID *uuid.UUID
	Items       []SaleItemInput
	Payments    []SalePaymentInput
}

// CreateSale performs the whole checkout in one transaction: stock is
// decremented, the sale and its items are written, inline payments are
// recorded and the settlement is derived. Any failure rolls everything back;
// there is no state where a sale exists without its stock movements.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if item.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Item unit price cannot be negative")
		}
	}
	for _, p := range input.Payments {
		if !p.Method.Valid() {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Unknown payment method: %s", p.Method))
		}
		if p.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
		}
	}

	var saleID uuid.UUID

	err := s.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		terminal, err := repos.Terminals.GetByID(ctx, input.TerminalID)
		if err != nil {
			return err
		}
		if terminal == nil {
			return apperror.NewBadRequestError("Terminal not found")
		}
		if !terminal.IsActive {
			return apperror.NewBadRequestError("Terminal is not active")
		}

		if input.CustomerID != nil {
			customer, err := repos.Customers.GetByID(ctx, *input.CustomerID)
			if err != nil {
				return err
			}
			if customer == nil {
				return apperror.NewNotFoundError("Customer")
			}
		}

		// Batch-fetch products; duplicate lines for the same product
		// accumulate into one decrement.
		productIDs := make([]uuid.UUID, 0, len(input.Items))
		decrements := make(map[uuid.UUID]int, len(input.Items))
		for _, item := range input.Items {
			if _, seen := decrements[item.ProductID]; !seen {
				productIDs = append(productIDs, item.ProductID)
			}
			decrements[item.ProductID] += item.Quantity
		}

		products, err := repos.Products.GetByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		productMap := make(map[uuid.UUID]entity.Product, len(products))
		for _, p := range products {
			productMap[p.ID] = p
		}
		for _, id := range productIDs {
			if _, ok := productMap[id]; !ok {
				return apperror.NewNotFoundError("Product " + id.String())
			}
		}

		// Conditional decrement guarded by quantity >= amount closes the
		// check-then-decrement race between concurrent checkouts.
		failedIDs, err := repos.Products.AtomicDecrementBatch(ctx, decrements)
		if err != nil {
			return err
		}
		if len(failedIDs) > 0 {
			names := make([]string, 0, len(failedIDs))
			for _, id := range failedIDs {
				names = append(names, productMap[id].Name)
			}
			return apperror.NewBadRequestError("Insufficient stock for: " + strings.Join(names, ", "))
		}

		var totalAmount int64
		for _, item := range input.Items {
			totalAmount += int64(item.Quantity) * item.UnitPrice
		}

		sale := &entity.Sale{
			CustomerID:  input.CustomerID,
			TerminalID:  input.TerminalID,
			CreatedByID: input.CreatedByID,
			TotalAmount: totalAmount,
			Status:      enum.SaleStatusPending,
			Notes:       input.Notes,
		}

		if err := createWithFreshOrderNumber(ctx, repos.Sales, sale); err != nil {
			return err
		}
		saleID = sale.ID

		items := make([]entity.SaleItem, 0, len(input.Items))
		movements := make([]entity.StockMovement, 0, len(input.Items))
		movementNote := "Sale " + sale.OrderNumber
		for _, item := range input.Items {
			items = append(items, entity.SaleItem{
				SaleID:    sale.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  int64(item.Quantity) * item.UnitPrice,
			})
			movements = append(movements, entity.StockMovement{
				ProductID:   item.ProductID,
				Type:        enum.MovementTypeOut,
				Quantity:    item.Quantity,
				Reason:      enum.MovementReasonSale,
				Notes:       &movementNote,
				CreatedByID: input.CreatedByID,
			})
		}
		if err := repos.SaleItems.CreateBatch(ctx, items); err != nil {
			return err
		}
		if err := repos.Movements.CreateBatch(ctx, movements); err != nil {
			return err
		}

		// Inline payments are recorded in order and cumulatively capped at
		// the sale total; anything over the cap is change handed back, not
		// revenue.
		remaining := totalAmount
		recorded := make([]entity.Payment, 0, len(input.Payments))
		for _, p := range input.Payments {
			if remaining <= 0 {
				break
			}
			amount := p.Amount
			if amount > remaining {
				amount = remaining
			}

			terminalID := input.TerminalID
			if p.TerminalID != nil {
				payTerminal, err := repos.Terminals.GetByID(ctx, *p.TerminalID)
				if err != nil {
					return err
				}
				if payTerminal == nil || !payTerminal.IsActive {
					return apperror.NewBadRequestError("Payment terminal not found or inactive")
				}
				terminalID = *p.TerminalID
			}

			payment := entity.Payment{
				SaleID:       sale.ID,
				TerminalID:   terminalID,
				ReceivedByID: input.CreatedByID,
				Amount:       amount,
				Method:       p.Method,
				Reference:    p.Reference,
			}
			if err := repos.Payments.Create(ctx, &payment); err != nil {
				return err
			}
			recorded = append(recorded, payment)
			remaining -= amount
		}

		amountPaid, status := settlement.Compute(totalAmount, recorded)
		return repos.Sales.UpdateSettlement(ctx, sale.ID, amountPaid, status)
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.GetByID(ctx, saleID)
}

// createWithFreshOrderNumber allocates a PD-prefixed order number and
// creates the sale, retrying on collision with the unique constraint. The
// pre-check keeps the common case cheap; the constraint violation from the
// insert itself covers two checkouts drawing the same number at once, since
// neither pre-check sees the other's uncommitted row.
func createWithFreshOrderNumber(ctx context.Context, sales repository.SaleRepository, sale *entity.Sale) error {
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number := utils.GenerateOrderNumber()
		existing, err := sales.GetByOrderNumber(ctx, number)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		sale.OrderNumber = number
		err = sales.Create(ctx, sale)
		if errors.Is(err, repository.ErrDuplicateOrderNumber) {
			continue
		}
		return err
	}
	return apperror.NewConflictError("Could not allocate a unique order number")
}

// GetSale returns a sale with items, payments and related records
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetSaleByOrderNumber returns a sale looked up by its order number
func (s *SaleService) GetSaleByOrderNumber(ctx context.Context, orderNumber string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// ListSales returns sales with filters and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(ctx, params)
}
