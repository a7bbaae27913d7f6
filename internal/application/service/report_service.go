package service

import (
	"context"
	"time"

	"github.com/kipsang/dukapos-api/internal/domain/entity"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/pkg/apperror"
)

// ReportService provides the read-only aggregations behind the reports
// endpoints. All amounts come back as decimal currency.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
) *ReportService {
	return &ReportService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
	}
}

// DailyReport summarizes one trading day
type DailyReport struct {
	Date        string                          `json:"date"`
	Revenue     float64                         `json:"revenue"`
	Cost        float64                         `json:"cost"`
	Profit      float64                         `json:"profit"`
	ItemsSold   int                             `json:"items_sold"`
	SaleCount   int                             `json:"sale_count"`
	TopProducts []repository.ProductSalesResult `json:"top_products"`
}

// GetDailyReport aggregates revenue, cost, profit and volume for one calendar
// day plus that day's best sellers.
func (s *ReportService) GetDailyReport(ctx context.Context, day time.Time) (*DailyReport, error) {
	stats, err := s.analyticsRepo.GetDailyStats(ctx, day)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, dayStart, dayStart.AddDate(0, 0, 1), 5)
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:        dayStart.Format("2006-01-02"),
		Revenue:     stats.Revenue,
		Cost:        stats.Cost,
		Profit:      stats.Profit,
		ItemsSold:   stats.ItemsSold,
		SaleCount:   stats.SaleCount,
		TopProducts: topProducts,
	}, nil
}

// SalesAnalytics breaks a date window down by product, category and date
type SalesAnalytics struct {
	From       string                           `json:"from"`
	To         string                           `json:"to"`
	ByProduct  []repository.ProductSalesResult  `json:"by_product"`
	ByCategory []repository.CategorySalesResult `json:"by_category"`
	ByDate     []repository.DateSalesResult     `json:"by_date"`
	ByMethod   []repository.MethodSalesResult   `json:"by_method"`
}

// GetSalesAnalytics aggregates sales over the trailing window of whole days
// ending today. Days must be between 1 and 365.
func (s *ReportService) GetSalesAnalytics(ctx context.Context, days int) (*SalesAnalytics, error) {
	if days < 1 || days > 365 {
		return nil, apperror.NewBadRequestError("Days must be between 1 and 365")
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	byProduct, err := s.analyticsRepo.GetSalesByProduct(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.analyticsRepo.GetSalesByCategory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDate, err := s.analyticsRepo.GetSalesByDate(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byMethod, err := s.analyticsRepo.GetPaymentsByMethod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &SalesAnalytics{
		From:       from.Format("2006-01-02"),
		To:         to.AddDate(0, 0, -1).Format("2006-01-02"),
		ByProduct:  byProduct,
		ByCategory: byCategory,
		ByDate:     byDate,
		ByMethod:   byMethod,
	}, nil
}

// CashReport summarizes one day's takings per payment method. Credit lines
// are carried balances, not money in the drawer, so they are listed but
// excluded from the collected total.
type CashReport struct {
	Date           string                         `json:"date"`
	Methods        []repository.MethodSalesResult `json:"methods"`
	TotalCollected float64                        `json:"total_collected"`
	CreditExtended float64                        `json:"credit_extended"`
}

// GetCashReport aggregates payments taken on one calendar day per method
func (s *ReportService) GetCashReport(ctx context.Context, day time.Time) (*CashReport, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	methods, err := s.analyticsRepo.GetPaymentsByMethod(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	report := &CashReport{
		Date:    dayStart.Format("2006-01-02"),
		Methods: methods,
	}
	for _, m := range methods {
		if m.Method.IsCredit() {
			report.CreditExtended += m.Amount
			continue
		}
		report.TotalCollected += m.Amount
	}

	return report, nil
}

// InventoryReport summarizes the value of stock on hand
type InventoryReport struct {
	Products         []repository.ValuationResult `json:"products"`
	TotalCostValue   float64                      `json:"total_cost_value"`
	TotalRetailValue float64                      `json:"total_retail_value"`
	LowStock         []entity.Product             `json:"low_stock"`
}

// GetInventoryReport returns the valuation of active stock plus the products
// that need reordering
func (s *ReportService) GetInventoryReport(ctx context.Context) (*InventoryReport, error) {
	valuations, err := s.analyticsRepo.GetInventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		Products: valuations,
		LowStock: lowStock,
	}
	for _, v := range valuations {
		report.TotalCostValue += v.CostValue
		report.TotalRetailValue += v.RetailValue
	}

	return report, nil
}

// TopProducts returns the best sellers by revenue over the trailing window
func (s *ReportService) TopProducts(ctx context.Context, days, limit int) ([]repository.ProductSalesResult, error) {
	if days < 1 || days > 365 {
		return nil, apperror.NewBadRequestError("Days must be between 1 and 365")
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	now := time.Now()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	return s.analyticsRepo.GetTopProducts(ctx, from, to, limit)
}
