package repository

import "context"

// TxRepos bundles the repositories bound to a single database transaction.
// Code running inside TxRunner.RunInTx must use these instances; anything
// created outside the callback operates on its own connection.
type TxRepos struct {
	Products  ProductRepository
	Sales     SaleRepository
	SaleItems SaleItemRepository
	Payments  PaymentRepository
	Movements StockMovementRepository
	Terminals TerminalRepository
	Customers CustomerRepository
}

// TxRunner executes a function within one database transaction. A non-nil
// error from fn rolls back every write made through the TxRepos.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(repos TxRepos) error) error
}
