package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// DailyStatsResult aggregates one day of selling activity
type DailyStatsResult struct {
	Date      time.Time
	Revenue   float64
	Cost      float64
	Profit    float64
	ItemsSold int
	SaleCount int
}

// ProductSalesResult represents sales aggregated by product
type ProductSalesResult struct {
	ProductID    uuid.UUID
	ProductName  string
	SKU          string
	QuantitySold int
	Revenue      float64
}

// CategorySalesResult represents sales aggregated by category
type CategorySalesResult struct {
	CategoryID   uuid.UUID
	CategoryName string
	QuantitySold int
	Revenue      float64
}

// DateSalesResult represents sales aggregated by calendar date
type DateSalesResult struct {
	Date      time.Time
	SaleCount int
	Revenue   float64
}

// MethodSalesResult represents payments aggregated by payment method
type MethodSalesResult struct {
	Method       enum.PaymentMethod
	PaymentCount int
	Amount       float64
}

// ValuationResult represents the stock value of one product
type ValuationResult struct {
	ProductID   uuid.UUID
	ProductName string
	SKU         string
	Quantity    int
	CostValue   float64
	RetailValue float64
}

// AnalyticsRepository defines the read-only aggregation queries behind the
// reports endpoints. Amounts are returned as decimal currency, not cents.
type AnalyticsRepository interface {
	// GetDailyStats aggregates revenue, cost and volume for one calendar day
	GetDailyStats(ctx context.Context, day time.Time) (*DailyStatsResult, error)

	// GetTopProducts returns the best sellers by revenue in [from, to)
	GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSalesResult, error)

	// GetSalesByProduct aggregates sales per product in [from, to)
	GetSalesByProduct(ctx context.Context, from, to time.Time) ([]ProductSalesResult, error)

	// GetSalesByCategory aggregates sales per category in [from, to)
	GetSalesByCategory(ctx context.Context, from, to time.Time) ([]CategorySalesResult, error)

	// GetSalesByDate aggregates sales per calendar date in [from, to)
	GetSalesByDate(ctx context.Context, from, to time.Time) ([]DateSalesResult, error)

	// GetPaymentsByMethod aggregates recorded payments per method in [from, to)
	GetPaymentsByMethod(ctx context.Context, from, to time.Time) ([]MethodSalesResult, error)

	// GetInventoryValuation returns cost and retail value of stock on hand
	GetInventoryValuation(ctx context.Context) ([]ValuationResult, error)
}
