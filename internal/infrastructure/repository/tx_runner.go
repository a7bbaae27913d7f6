package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
)

type txRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner backed by gorm transactions
func NewTxRunner(db *gorm.DB) domainRepo.TxRunner {
	return &txRunner{db: db}
}

// RunInTx executes fn with repositories bound to a single transaction. Any
// error from fn rolls back everything written through those repositories.
func (t *txRunner) RunInTx(ctx context.Context, fn func(repos domainRepo.TxRepos) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domainRepo.TxRepos{
			Products:  NewProductRepository(tx),
			Sales:     NewSaleRepository(tx),
			SaleItems: NewSaleItemRepository(tx),
			Payments:  NewPaymentRepository(tx),
			Movements: NewStockMovementRepository(tx),
			Terminals: NewTerminalRepository(tx),
			Customers: NewCustomerRepository(tx),
		})
	})
}
