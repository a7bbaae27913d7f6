package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

func pay(method enum.PaymentMethod, amount int64) entity.Payment {
	return entity.Payment{Method: method, Amount: amount}
}

func TestComputeNoPayments(t *testing.T) {
	paid, status := Compute(10000, nil)
	assert.Equal(t, int64(0), paid)
	assert.Equal(t, enum.SaleStatusPending, status)
}

func TestComputeFullCashPayment(t *testing.T) {
	paid, status := Compute(10000, []entity.Payment{pay(enum.PaymentMethodCash, 10000)})
	assert.Equal(t, int64(10000), paid)
	assert.Equal(t, enum.SaleStatusPaid, status)
}

func TestComputePartialPayment(t *testing.T) {
	paid, status := Compute(10000, []entity.Payment{pay(enum.PaymentMethodMpesa, 4000)})
	assert.Equal(t, int64(4000), paid)
	assert.Equal(t, enum.SaleStatusPartial, status)
}

func TestComputeSplitPaymentsSum(t *testing.T) {
	paid, status := Compute(10000, []entity.Payment{
		pay(enum.PaymentMethodCash, 6000),
		pay(enum.PaymentMethodMpesa, 4000),
	})
	assert.Equal(t, int64(10000), paid)
	assert.Equal(t, enum.SaleStatusPaid, status)
}

func TestComputeCreditExcludedFromAmountPaid(t *testing.T) {
	paid, status := Compute(10000, []entity.Payment{pay(enum.PaymentMethodCredit, 10000)})
	assert.Equal(t, int64(0), paid)
	assert.Equal(t, enum.SaleStatusPartial, status)
}

func TestComputeCreditPlusCash(t *testing.T) {
	paid, status := Compute(10000, []entity.Payment{
		pay(enum.PaymentMethodCash, 3000),
		pay(enum.PaymentMethodCredit, 7000),
	})
	assert.Equal(t, int64(3000), paid)
	assert.Equal(t, enum.SaleStatusPartial, status)
}

func TestComputeExactBoundaryIsPaid(t *testing.T) {
	// total_paid >= total wins over the partial rule
	paid, status := Compute(5000, []entity.Payment{
		pay(enum.PaymentMethodCash, 5000),
		pay(enum.PaymentMethodCredit, 100),
	})
	assert.Equal(t, int64(5000), paid)
	assert.Equal(t, enum.SaleStatusPaid, status)
}

func TestComputeZeroTotal(t *testing.T) {
	paid, status := Compute(0, nil)
	assert.Equal(t, int64(0), paid)
	assert.Equal(t, enum.SaleStatusPaid, status)
}

func TestComputeStatusTotality(t *testing.T) {
	// Every combination lands on exactly one of the three statuses.
	totals := []int64{0, 1, 9999}
	sets := [][]entity.Payment{
		nil,
		{pay(enum.PaymentMethodCash, 1)},
		{pay(enum.PaymentMethodCredit, 1)},
		{pay(enum.PaymentMethodCash, 9999)},
		{pay(enum.PaymentMethodCash, 5000), pay(enum.PaymentMethodCredit, 4999)},
	}
	for _, total := range totals {
		for _, ps := range sets {
			_, status := Compute(total, ps)
			assert.True(t, status.Valid(), "total=%d payments=%v status=%q", total, ps, status)
		}
	}
}
