package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
)

type saleTestEnv struct {
	svc       *SaleService
	products  *fakeProductRepo
	sales     *fakeSaleRepo
	items     *fakeSaleItemRepo
	payments  *fakePaymentRepo
	movements *fakeMovementRepo
	terminals *fakeTerminalRepo
	customers *fakeCustomerRepo

	terminal entity.Terminal
	product  entity.Product
}

func newSaleTestEnv(t *testing.T) *saleTestEnv {
	t.Helper()

	env := &saleTestEnv{
		products:  newFakeProductRepo(),
		sales:     newFakeSaleRepo(),
		items:     &fakeSaleItemRepo{},
		payments:  &fakePaymentRepo{},
		movements: &fakeMovementRepo{},
		terminals: newFakeTerminalRepo(),
		customers: newFakeCustomerRepo(),
	}

	env.terminal = entity.Terminal{ID: uuid.New(), Name: "Main Counter", IsActive: true}
	require.NoError(t, env.terminals.Create(context.Background(), &env.terminal))

	env.product = entity.Product{
		ID:        uuid.New(),
		Name:      "Maize Flour 2kg",
		SKU:       "MF-2KG",
		Quantity:  10,
		UnitPrice: 500,
		CostPrice: 350,
		IsActive:  true,
	}
	require.NoError(t, env.products.Create(context.Background(), &env.product))

	runner := &fakeTxRunner{repos: repository.TxRepos{
		Products:  env.products,
		Sales:     env.sales,
		SaleItems: env.items,
		Payments:  env.payments,
		Movements: env.movements,
		Terminals: env.terminals,
		Customers: env.customers,
	}}
	env.svc = NewSaleService(env.sales, runner)
	return env
}

func (env *saleTestEnv) basicInput() *CreateSaleInput {
	return &CreateSaleInput{
		TerminalID: env.terminal.ID,
		Items: []SaleItemInput{
			{ProductID: env.product.ID, Quantity: 2, UnitPrice: 500},
		},
	}
}

func TestCreateSaleFullyPaid(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Payments = []SalePaymentInput{{Amount: 1000, Method: enum.PaymentMethodCash}}

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), sale.TotalAmount)
	assert.Equal(t, int64(1000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
	assert.True(t, strings.HasPrefix(sale.OrderNumber, "PD"))
	assert.Len(t, sale.OrderNumber, 8)

	// Stock decremented and the movement references the order number
	stored, _ := env.products.GetByID(context.Background(), env.product.ID)
	assert.Equal(t, 8, stored.Quantity)
	require.Len(t, env.movements.movements, 1)
	m := env.movements.movements[0]
	assert.Equal(t, enum.MovementTypeOut, m.Type)
	assert.Equal(t, enum.MovementReasonSale, m.Reason)
	assert.Equal(t, 2, m.Quantity)
	require.NotNil(t, m.Notes)
	assert.Equal(t, "Sale "+sale.OrderNumber, *m.Notes)
}

func TestCreateSaleNoPaymentsIsPending(t *testing.T) {
	env := newSaleTestEnv(t)

	sale, err := env.svc.CreateSale(context.Background(), env.basicInput())
	require.NoError(t, err)

	assert.Equal(t, int64(0), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPending, sale.Status)
	assert.Equal(t, int64(1000), sale.BalanceDue())
}

func TestCreateSalePartialPayment(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Payments = []SalePaymentInput{{Amount: 400, Method: enum.PaymentMethodMpesa}}

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(400), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)
	assert.Equal(t, int64(600), sale.BalanceDue())
}

func TestCreateSaleOverTenderIsCapped(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	// Customer hands over 2000 for a 1000 sale; the excess is change
	input.Payments = []SalePaymentInput{{Amount: 2000, Method: enum.PaymentMethodCash}}

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
	require.Len(t, env.payments.payments, 1)
	assert.Equal(t, int64(1000), env.payments.payments[0].Amount)
}

func TestCreateSaleSplitPaymentCapAppliesCumulatively(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Payments = []SalePaymentInput{
		{Amount: 700, Method: enum.PaymentMethodCash},
		{Amount: 700, Method: enum.PaymentMethodMpesa},
	}

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, env.payments.payments, 2)
	assert.Equal(t, int64(700), env.payments.payments[0].Amount)
	assert.Equal(t, int64(300), env.payments.payments[1].Amount)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
}

func TestCreateSaleOnCredit(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Payments = []SalePaymentInput{{Amount: 1000, Method: enum.PaymentMethodCredit}}

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	// Credit is recorded but never counts toward amount paid
	assert.Equal(t, int64(0), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)
	require.Len(t, env.payments.payments, 1)
	assert.Equal(t, int64(1000), env.payments.payments[0].Amount)
}

// collidingSaleRepo fails Create with the duplicate order number sentinel a
// fixed number of times before delegating, imitating the unique constraint
// catching a concurrent insert that the pre-check could not see.
type collidingSaleRepo struct {
	*fakeSaleRepo
	collisions int
	attempts   int
}

func (r *collidingSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.attempts++
	if r.attempts <= r.collisions {
		return repository.ErrDuplicateOrderNumber
	}
	return r.fakeSaleRepo.Create(ctx, sale)
}

func (env *saleTestEnv) useCollidingSales(collisions int) *collidingSaleRepo {
	colliding := &collidingSaleRepo{fakeSaleRepo: env.sales, collisions: collisions}
	runner := &fakeTxRunner{repos: repository.TxRepos{
		Products:  env.products,
		Sales:     colliding,
		SaleItems: env.items,
		Payments:  env.payments,
		Movements: env.movements,
		Terminals: env.terminals,
		Customers: env.customers,
	}}
	env.svc = NewSaleService(env.sales, runner)
	return colliding
}

func TestCreateSaleRetriesWhenOrderNumberInsertCollides(t *testing.T) {
	env := newSaleTestEnv(t)
	colliding := env.useCollidingSales(1)

	sale, err := env.svc.CreateSale(context.Background(), env.basicInput())
	require.NoError(t, err)

	assert.Equal(t, 2, colliding.attempts)
	assert.True(t, strings.HasPrefix(sale.OrderNumber, "PD"))
	assert.Len(t, env.sales.sales, 1)
}

func TestCreateSaleOrderNumberExhaustionIsConflict(t *testing.T) {
	env := newSaleTestEnv(t)
	colliding := env.useCollidingSales(orderNumberAttempts)

	_, err := env.svc.CreateSale(context.Background(), env.basicInput())
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Equal(t, orderNumberAttempts, colliding.attempts)
	assert.Empty(t, env.sales.sales)
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Items[0].Quantity = 11

	_, err := env.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
	assert.Contains(t, err.Error(), env.product.Name)

	// Nothing was applied: quantity untouched, no sale or movement written
	stored, _ := env.products.GetByID(context.Background(), env.product.ID)
	assert.Equal(t, 10, stored.Quantity)
	assert.Empty(t, env.movements.movements)
	assert.Empty(t, env.sales.sales)
}

func TestCreateSaleDuplicateLinesAccumulate(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Items = []SaleItemInput{
		{ProductID: env.product.ID, Quantity: 6, UnitPrice: 500},
		{ProductID: env.product.ID, Quantity: 6, UnitPrice: 500},
	}

	// 12 in total against 10 on hand must fail even though each line fits
	_, err := env.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock")
}

func TestCreateSaleInactiveTerminal(t *testing.T) {
	env := newSaleTestEnv(t)
	env.terminal.IsActive = false
	require.NoError(t, env.terminals.Update(context.Background(), &env.terminal))

	_, err := env.svc.CreateSale(context.Background(), env.basicInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Terminal is not active")
}

func TestCreateSaleUnknownTerminal(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.TerminalID = uuid.New()

	_, err := env.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Terminal not found")
}

func TestCreateSaleUnknownCustomer(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	missing := uuid.New()
	input.CustomerID = &missing

	_, err := env.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCreateSaleRejectsEmptyItems(t *testing.T) {
	env := newSaleTestEnv(t)

	_, err := env.svc.CreateSale(context.Background(), &CreateSaleInput{TerminalID: env.terminal.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one item")
}

func TestCreateSaleRejectsUnknownPaymentMethod(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	input.Payments = []SalePaymentInput{{Amount: 1000, Method: "cheque"}}

	_, err := env.svc.CreateSale(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown payment method")
}

func TestCreateSaleUnitPriceSnapshot(t *testing.T) {
	env := newSaleTestEnv(t)
	input := env.basicInput()
	// Till charges a discounted price; it must be stored as sent
	input.Items[0].UnitPrice = 450

	sale, err := env.svc.CreateSale(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(900), sale.TotalAmount)
	items, _ := env.items.ListBySale(context.Background(), sale.ID)
	require.Len(t, items, 1)
	assert.Equal(t, int64(450), items[0].UnitPrice)
	assert.Equal(t, int64(900), items[0].Subtotal)
}

func TestGetSaleNotFound(t *testing.T) {
	env := newSaleTestEnv(t)

	_, err := env.svc.GetSale(context.Background(), uuid.New())
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
