package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/pagination"
)

// In-memory fakes for the repository interfaces. They implement only the
// behavior the services rely on; list filtering is deliberately naive.

// fakeTxRunner invokes the callback with a fixed set of repos. There is no
// rollback, so tests that expect a failed transaction must assert on the
// state the fakes were left in before the failing step.
type fakeTxRunner struct {
	repos repository.TxRepos
	calls int
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	f.calls++
	return fn(f.repos)
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsActive && p.Quantity <= p.ReorderPoint {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, amount := range decrements {
		p, ok := f.products[id]
		if !ok || p.Quantity < amount {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, amount := range decrements {
		f.products[id].Quantity -= amount
	}
	return nil, nil
}

func (f *fakeProductRepo) AdjustQuantity(ctx context.Context, id uuid.UUID, movementType enum.MovementType, amount int) error {
	p, ok := f.products[id]
	if !ok {
		return nil
	}
	if movementType == enum.MovementTypeIn {
		p.Quantity += amount
		return nil
	}
	p.Quantity -= amount
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	return nil
}

type fakeSaleRepo struct {
	sales map[uuid.UUID]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (f *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	sale.CreatedAt = time.Now()
	clone := *sale
	f.sales[sale.ID] = &clone
	return nil
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSaleRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Sale, error) {
	for _, s := range f.sales {
		if s.OrderNumber == orderNumber {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) LockByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSaleRepo) UpdateSettlement(ctx context.Context, id uuid.UUID, amountPaid int64, status enum.SaleStatus) error {
	if s, ok := f.sales[id]; ok {
		s.AmountPaid = amountPaid
		s.Status = status
	}
	return nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeSaleItemRepo struct {
	items []entity.SaleItem
}

func (f *fakeSaleItemRepo) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeSaleItemRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.SaleItem, error) {
	var out []entity.SaleItem
	for _, item := range f.items {
		if item.SaleID == saleID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = time.Now()
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) ListBySale(ctx context.Context, saleID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range f.payments {
		if p.SaleID == saleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) List(ctx context.Context, params *pagination.PaginationParams, dateFrom, dateTo *time.Time) ([]entity.Payment, int64, error) {
	return f.payments, int64(len(f.payments)), nil
}

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (f *fakeMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	movement.CreatedAt = time.Now()
	f.movements = append(f.movements, *movement)
	return nil
}

func (f *fakeMovementRepo) CreateBatch(ctx context.Context, movements []entity.StockMovement) error {
	for i := range movements {
		if movements[i].ID == uuid.Nil {
			movements[i].ID = uuid.New()
		}
	}
	f.movements = append(f.movements, movements...)
	return nil
}

func (f *fakeMovementRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			clone := m
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementRepo) List(ctx context.Context, params *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	return f.movements, int64(len(f.movements)), nil
}

type fakeTerminalRepo struct {
	terminals map[uuid.UUID]*entity.Terminal
}

func newFakeTerminalRepo() *fakeTerminalRepo {
	return &fakeTerminalRepo{terminals: make(map[uuid.UUID]*entity.Terminal)}
}

func (f *fakeTerminalRepo) Create(ctx context.Context, terminal *entity.Terminal) error {
	if terminal.ID == uuid.Nil {
		terminal.ID = uuid.New()
	}
	clone := *terminal
	f.terminals[terminal.ID] = &clone
	return nil
}

func (f *fakeTerminalRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Terminal, error) {
	t, ok := f.terminals[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTerminalRepo) GetByName(ctx context.Context, name string) (*entity.Terminal, error) {
	for _, t := range f.terminals {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTerminalRepo) Update(ctx context.Context, terminal *entity.Terminal) error {
	clone := *terminal
	f.terminals[terminal.ID] = &clone
	return nil
}

func (f *fakeTerminalRepo) List(ctx context.Context, activeOnly bool) ([]entity.Terminal, error) {
	var out []entity.Terminal
	for _, t := range f.terminals {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email != nil && *c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	clone := *customer
	f.customers[customer.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}
