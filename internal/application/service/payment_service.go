package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/internal/domain/settlement"
	"github.com/kipsang/dukapos-api/pkg/apperror"
	"github.com/kipsang/dukapos-api/pkg/pagination"
)

// PaymentService records payments against existing sales, typically to clear
// a balance carried on credit.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	txRunner    repository.TxRunner
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, txRunner repository.TxRunner) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		txRunner:    txRunner,
	}
}

// RecordPaymentInput represents a standalone payment against a sale
type RecordPaymentInput struct {
	SaleID       uuid.UUID
	Amount       int64
	Method       enum.PaymentMethod
	TerminalID   *uuid.UUID
	Reference    *string
	ReceivedByID *uuid.UUID
}

// RecordPayment records a payment and recomputes the sale's settlement in one
// transaction. The sale row is locked first so two cashiers clearing the same
// balance at once serialize instead of both recording the full amount.
//
// The amount is capped at the outstanding balance, the same policy applied to
// inline payments at checkout: a sale can never collect more than its total.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Payment, error) {
	if !input.Method.Valid() {
		return nil, apperror.NewBadRequestError("Unknown payment method")
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}

	var payment *entity.Payment

	err := s.txRunner.RunInTx(ctx, func(repos repository.TxRepos) error {
		sale, err := repos.Sales.LockByID(ctx, input.SaleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return apperror.NewNotFoundError("Sale")
		}

		balance := sale.BalanceDue()
		if balance <= 0 {
			return apperror.NewBadRequestError("Sale is already fully paid")
		}

		amount := input.Amount
		if !input.Method.IsCredit() && amount > balance {
			amount = balance
		}

		// Default to the terminal the sale was rung up on
		terminalID := sale.TerminalID
		if input.TerminalID != nil {
			terminal, err := repos.Terminals.GetByID(ctx, *input.TerminalID)
			if err != nil {
				return err
			}
			if terminal == nil {
				return apperror.NewBadRequestError("Terminal not found")
			}
			if !terminal.IsActive {
				return apperror.NewBadRequestError("Terminal is not active")
			}
			terminalID = *input.TerminalID
		}

		payment = &entity.Payment{
			SaleID:       sale.ID,
			TerminalID:   terminalID,
			ReceivedByID: input.ReceivedByID,
			Amount:       amount,
			Method:       input.Method,
			Reference:    input.Reference,
		}
		if err := repos.Payments.Create(ctx, payment); err != nil {
			return err
		}

		// Settlement is always derived from the full payment set, never
		// incremented, so it cannot drift.
		payments, err := repos.Payments.ListBySale(ctx, sale.ID)
		if err != nil {
			return err
		}
		amountPaid, status := settlement.Compute(sale.TotalAmount, payments)
		return repos.Sales.UpdateSettlement(ctx, sale.ID, amountPaid, status)
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment returns a single payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPaymentsBySale returns every payment recorded against a sale
func (s *PaymentService) ListPaymentsBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	return s.paymentRepo.ListBySale(ctx, saleID)
}

// ListPayments returns payments across sales with optional date bounds
func (s *PaymentService) ListPayments(ctx context.Context, params *pagination.PaginationParams, dateFrom, dateTo *time.Time) ([]entity.Payment, int64, error) {
	return s.paymentRepo.List(ctx, params, dateFrom, dateTo)
}
