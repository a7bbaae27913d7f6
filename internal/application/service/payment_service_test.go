package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
)

type paymentTestEnv struct {
	svc       *PaymentService
	sales     *fakeSaleRepo
	payments  *fakePaymentRepo
	terminals *fakeTerminalRepo

	terminal entity.Terminal
	sale     entity.Sale
}

// newPaymentTestEnv seeds a 10000 sale with 4000 already paid in cash.
func newPaymentTestEnv(t *testing.T) *paymentTestEnv {
	t.Helper()

	env := &paymentTestEnv{
		sales:     newFakeSaleRepo(),
		payments:  &fakePaymentRepo{},
		terminals: newFakeTerminalRepo(),
	}

	env.terminal = entity.Terminal{ID: uuid.New(), Name: "Main Counter", IsActive: true}
	require.NoError(t, env.terminals.Create(context.Background(), &env.terminal))

	env.sale = entity.Sale{
		OrderNumber: "PD123456",
		TerminalID:  env.terminal.ID,
		TotalAmount: 10000,
		AmountPaid:  4000,
		Status:      enum.SaleStatusPartial,
	}
	require.NoError(t, env.sales.Create(context.Background(), &env.sale))
	require.NoError(t, env.payments.Create(context.Background(), &entity.Payment{
		SaleID:     env.sale.ID,
		TerminalID: env.terminal.ID,
		Amount:     4000,
		Method:     enum.PaymentMethodCash,
	}))

	runner := &fakeTxRunner{repos: repository.TxRepos{
		Sales:     env.sales,
		Payments:  env.payments,
		Terminals: env.terminals,
	}}
	env.svc = NewPaymentService(env.payments, runner)
	return env
}

func TestRecordPaymentClearsBalance(t *testing.T) {
	env := newPaymentTestEnv(t)

	payment, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 6000,
		Method: enum.PaymentMethodMpesa,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), payment.Amount)

	sale, _ := env.sales.GetByID(context.Background(), env.sale.ID)
	assert.Equal(t, int64(10000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
}

func TestRecordPaymentCapsAtBalance(t *testing.T) {
	env := newPaymentTestEnv(t)

	// Balance is 6000; tendering 9000 records only the balance
	payment, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 9000,
		Method: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), payment.Amount)

	sale, _ := env.sales.GetByID(context.Background(), env.sale.ID)
	assert.Equal(t, int64(10000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
}

func TestRecordPaymentPartial(t *testing.T) {
	env := newPaymentTestEnv(t)

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 1000,
		Method: enum.PaymentMethodCash,
	})
	require.NoError(t, err)

	sale, _ := env.sales.GetByID(context.Background(), env.sale.ID)
	assert.Equal(t, int64(5000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)
	assert.Equal(t, int64(5000), sale.BalanceDue())
}

func TestRecordPaymentCreditKeepsFaceValue(t *testing.T) {
	env := newPaymentTestEnv(t)

	// Credit records the promised amount uncapped but settles nothing
	payment, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 6000,
		Method: enum.PaymentMethodCredit,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), payment.Amount)

	sale, _ := env.sales.GetByID(context.Background(), env.sale.ID)
	assert.Equal(t, int64(4000), sale.AmountPaid)
	assert.Equal(t, enum.SaleStatusPartial, sale.Status)
}

func TestRecordPaymentFullyPaidRejected(t *testing.T) {
	env := newPaymentTestEnv(t)
	require.NoError(t, env.sales.UpdateSettlement(context.Background(), env.sale.ID, 10000, enum.SaleStatusPaid))

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 100,
		Method: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already fully paid")
}

func TestRecordPaymentDefaultsToSaleTerminal(t *testing.T) {
	env := newPaymentTestEnv(t)

	payment, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 1000,
		Method: enum.PaymentMethodCash,
	})
	require.NoError(t, err)
	assert.Equal(t, env.terminal.ID, payment.TerminalID)
}

func TestRecordPaymentExplicitTerminal(t *testing.T) {
	env := newPaymentTestEnv(t)
	other := entity.Terminal{ID: uuid.New(), Name: "Back Office", IsActive: true}
	require.NoError(t, env.terminals.Create(context.Background(), &other))

	payment, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:     env.sale.ID,
		Amount:     1000,
		Method:     enum.PaymentMethodCash,
		TerminalID: &other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, other.ID, payment.TerminalID)
}

func TestRecordPaymentInactiveTerminalRejected(t *testing.T) {
	env := newPaymentTestEnv(t)
	retired := entity.Terminal{ID: uuid.New(), Name: "Retired", IsActive: false}
	require.NoError(t, env.terminals.Create(context.Background(), &retired))

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID:     env.sale.ID,
		Amount:     1000,
		Method:     enum.PaymentMethodCash,
		TerminalID: &retired.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Terminal is not active")
}

func TestRecordPaymentUnknownSale(t *testing.T) {
	env := newPaymentTestEnv(t)

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: uuid.New(),
		Amount: 1000,
		Method: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	env := newPaymentTestEnv(t)

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 0,
		Method: enum.PaymentMethodCash,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than zero")
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	env := newPaymentTestEnv(t)

	_, err := env.svc.RecordPayment(context.Background(), &RecordPaymentInput{
		SaleID: env.sale.ID,
		Amount: 1000,
		Method: "barter",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown payment method")
}
