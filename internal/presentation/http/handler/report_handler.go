package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reports HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseDay reads an optional date query parameter, defaulting to today
func parseDay(c *gin.Context) (time.Time, bool) {
	v := c.Query("date")
	if v == "" {
		return time.Now(), true
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// GetDailyReport handles the daily summary report
// @Summary Daily Report
// @Description Revenue, cost, profit and volume for one day plus best sellers
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/daily [get]
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetDailyReport(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily report retrieved successfully", gin.H{"report": report})
}

// GetSalesAnalytics handles the sales analytics report
// @Summary Sales Analytics
// @Description Sales broken down by product, category, date and payment method
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/sales [get]
func (h *ReportHandler) GetSalesAnalytics(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = n
	}

	analytics, err := h.reportService.GetSalesAnalytics(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales analytics retrieved successfully", gin.H{"analytics": analytics})
}

// GetCashReport handles the end-of-day cash report
// @Summary Cash Report
// @Description One day's takings per payment method
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/cash [get]
func (h *ReportHandler) GetCashReport(c *gin.Context) {
	day, ok := parseDay(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetCashReport(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cash report retrieved successfully", gin.H{"report": report})
}

// GetInventoryReport handles the inventory valuation report
// @Summary Inventory Report
// @Description Stock valuation plus products needing reorder
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/inventory [get]
func (h *ReportHandler) GetInventoryReport(c *gin.Context) {
	report, err := h.reportService.GetInventoryReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory report retrieved successfully", gin.H{"report": report})
}

// GetTopProducts handles the best sellers report
// @Summary Top Products
// @Description Best sellers by revenue over the trailing window
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reports/top-products [get]
func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid days parameter")
			return
		}
		days = n
	}
	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "Invalid limit parameter")
			return
		}
		limit = n
	}

	products, err := h.reportService.TopProducts(c.Request.Context(), days, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", gin.H{"products": products})
}
