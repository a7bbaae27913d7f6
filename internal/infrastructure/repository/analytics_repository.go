package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainRepo "github.com/kipsang/dukapos-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetDailyStats(ctx context.Context, day time.Time) (*domainRepo.DailyStatsResult, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var result domainRepo.DailyStatsResult
	result.Date = start

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue,
			COALESCE(SUM(si.quantity * p.cost_price), 0) / 100.0 as cost,
			COALESCE(SUM(si.quantity), 0) as items_sold,
			COUNT(DISTINCT s.id) as sale_count
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id
		WHERE s.created_at >= ? AND s.created_at < ?
	`, start, end).Scan(&result).Error

	if err != nil {
		return nil, err
	}

	result.Profit = result.Revenue - result.Cost
	return &result, nil
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.ProductSalesResult, error) {
	var results []domainRepo.ProductSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as sku,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.created_at >= ? AND s.created_at < ?
		GROUP BY p.id, p.name, p.sku
		ORDER BY revenue DESC
		LIMIT ?
	`, from, to, limit).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetSalesByProduct(ctx context.Context, from, to time.Time) ([]domainRepo.ProductSalesResult, error) {
	var results []domainRepo.ProductSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as sku,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.created_at >= ? AND s.created_at < ?
		GROUP BY p.id, p.name, p.sku
		ORDER BY revenue DESC
	`, from, to).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetSalesByCategory(ctx context.Context, from, to time.Time) ([]domainRepo.CategorySalesResult, error) {
	var results []domainRepo.CategorySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(c.id, '00000000-0000-0000-0000-000000000000') as category_id,
			COALESCE(c.name, 'Uncategorized') as category_name,
			COALESCE(SUM(si.quantity), 0) as quantity_sold,
			COALESCE(SUM(si.subtotal), 0) / 100.0 as revenue
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		JOIN sales s ON s.id = si.sale_id
		WHERE s.created_at >= ? AND s.created_at < ?
		GROUP BY c.id, c.name
		ORDER BY revenue DESC
	`, from, to).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetSalesByDate(ctx context.Context, from, to time.Time) ([]domainRepo.DateSalesResult, error) {
	var results []domainRepo.DateSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			DATE(s.created_at) as date,
			COUNT(s.id) as sale_count,
			COALESCE(SUM(s.total_amount), 0) / 100.0 as revenue
		FROM sales s
		WHERE s.created_at >= ? AND s.created_at < ?
		GROUP BY DATE(s.created_at)
		ORDER BY date ASC
	`, from, to).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetPaymentsByMethod(ctx context.Context, from, to time.Time) ([]domainRepo.MethodSalesResult, error) {
	var results []domainRepo.MethodSalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			pm.method as method,
			COUNT(pm.id) as payment_count,
			COALESCE(SUM(pm.amount), 0) / 100.0 as amount
		FROM payments pm
		WHERE pm.created_at >= ? AND pm.created_at < ?
		GROUP BY pm.method
		ORDER BY amount DESC
	`, from, to).Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) GetInventoryValuation(ctx context.Context) ([]domainRepo.ValuationResult, error) {
	var results []domainRepo.ValuationResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.sku as sku,
			p.quantity as quantity,
			(p.quantity * p.cost_price) / 100.0 as cost_value,
			(p.quantity * p.unit_price) / 100.0 as retail_value
		FROM products p
		WHERE p.deleted_at IS NULL AND p.is_active = true
		ORDER BY cost_value DESC
	`).Scan(&results).Error

	return results, err
}
