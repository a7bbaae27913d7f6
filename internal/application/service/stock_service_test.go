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

type stockTestEnv struct {
	svc       *StockService
	products  *fakeProductRepo
	movements *fakeMovementRepo

	product entity.Product
}

func newStockTestEnv(t *testing.T) *stockTestEnv {
	t.Helper()

	env := &stockTestEnv{
		products:  newFakeProductRepo(),
		movements: &fakeMovementRepo{},
	}

	env.product = entity.Product{
		ID:           uuid.New(),
		Name:         "Cooking Oil 1L",
		SKU:          "CO-1L",
		Quantity:     10,
		ReorderPoint: 3,
		IsActive:     true,
	}
	require.NoError(t, env.products.Create(context.Background(), &env.product))

	runner := &fakeTxRunner{repos: repository.TxRepos{
		Products:  env.products,
		Movements: env.movements,
	}}
	env.svc = NewStockService(env.products, env.movements, runner)
	return env
}

func TestApplyMovementIn(t *testing.T) {
	env := newStockTestEnv(t)

	movement, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      enum.MovementTypeIn,
		Quantity:  5,
		Reason:    enum.MovementReasonPurchase,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.MovementTypeIn, movement.Type)
	assert.Equal(t, 5, movement.Quantity)

	stored, _ := env.products.GetByID(context.Background(), env.product.ID)
	assert.Equal(t, 15, stored.Quantity)
	assert.Len(t, env.movements.movements, 1)
}

func TestApplyMovementOut(t *testing.T) {
	env := newStockTestEnv(t)

	_, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      enum.MovementTypeOut,
		Quantity:  4,
		Reason:    enum.MovementReasonDamage,
	})
	require.NoError(t, err)

	stored, _ := env.products.GetByID(context.Background(), env.product.ID)
	assert.Equal(t, 6, stored.Quantity)
}

func TestApplyMovementOutClampsAtZero(t *testing.T) {
	env := newStockTestEnv(t)

	// Removing more than is on hand zeroes the count but the ledger keeps
	// the full requested quantity
	movement, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      enum.MovementTypeOut,
		Quantity:  25,
		Reason:    enum.MovementReasonAdjustment,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, movement.Quantity)

	stored, _ := env.products.GetByID(context.Background(), env.product.ID)
	assert.Equal(t, 0, stored.Quantity)
}

func TestApplyMovementUnknownProduct(t *testing.T) {
	env := newStockTestEnv(t)

	_, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: uuid.New(),
		Type:      enum.MovementTypeIn,
		Quantity:  1,
		Reason:    enum.MovementReasonPurchase,
	})
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestApplyMovementInvalidType(t *testing.T) {
	env := newStockTestEnv(t)

	_, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      "sideways",
		Quantity:  1,
		Reason:    enum.MovementReasonOther,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid movement type")
}

func TestApplyMovementInvalidReason(t *testing.T) {
	env := newStockTestEnv(t)

	_, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      enum.MovementTypeIn,
		Quantity:  1,
		Reason:    "because",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid movement reason")
}

func TestApplyMovementRejectsNonPositiveQuantity(t *testing.T) {
	env := newStockTestEnv(t)

	_, err := env.svc.ApplyMovement(context.Background(), &ApplyMovementInput{
		ProductID: env.product.ID,
		Type:      enum.MovementTypeIn,
		Quantity:  0,
		Reason:    enum.MovementReasonPurchase,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than zero")
}

func TestGetLowStockProducts(t *testing.T) {
	env := newStockTestEnv(t)
	low := entity.Product{
		ID:           uuid.New(),
		Name:         "Sugar 1kg",
		SKU:          "SG-1KG",
		Quantity:     2,
		ReorderPoint: 5,
		IsActive:     true,
	}
	require.NoError(t, env.products.Create(context.Background(), &low))

	products, err := env.svc.GetLowStockProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sugar 1kg", products[0].Name)
}
