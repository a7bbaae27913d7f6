package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// SaleHandler handles checkout and sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale handles checkout
// @Summary Create Sale
// @Description Create a sale with line items and optional inline payments
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Checkout data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateSaleInput{
		TerminalID:  req.TerminalID,
		CustomerID:  req.CustomerID,
		Notes:       req.Notes,
		CreatedByID: GetUserID(c),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: toCents(item.UnitPrice),
		})
	}
	for _, p := range req.Payments {
		input.Payments = append(input.Payments, service.SalePaymentInput{
			Amount:     toCents(p.Amount),
			Method:     enum.PaymentMethod(p.Method),
			TerminalID: p.TerminalID,
			Reference:  p.Reference,
		})
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale created successfully", gin.H{"sale": sale})
}

// ListSales handles listing sales with filters
// @Summary List Sales
// @Description List sales with status, terminal, customer and date filters
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	var req request.SaleFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}
	params.Pagination.Validate()

	if req.Status != "" {
		status := enum.SaleStatus(req.Status)
		if !status.Valid() {
			response.BadRequest(c, "Invalid sale status")
			return
		}
		params.Status = &status
	}
	if req.TerminalID != "" {
		id, err := utils.ParseUUID(req.TerminalID)
		if err != nil {
			response.BadRequest(c, "Invalid terminal ID")
			return
		}
		params.TerminalID = &id
	}
	if req.CustomerID != "" {
		id, err := utils.ParseUUID(req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		params.CustomerID = &id
	}
	if req.DateFrom != "" {
		t, err := time.Parse("2006-01-02", req.DateFrom)
		if err != nil {
			response.BadRequest(c, "Invalid date_from, expected YYYY-MM-DD")
			return
		}
		params.DateFrom = &t
	}
	if req.DateTo != "" {
		t, err := time.Parse("2006-01-02", req.DateTo)
		if err != nil {
			response.BadRequest(c, "Invalid date_to, expected YYYY-MM-DD")
			return
		}
		end := t.AddDate(0, 0, 1)
		params.DateTo = &end
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", pagination.NewPaginatedResult(sales, pag))
}

// GetSale handles fetching a single sale
// @Summary Get Sale
// @Description Get a sale with its items and payments
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Router /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", gin.H{"sale": sale})
}

// GetSaleByOrderNumber handles order number lookups
// @Summary Get Sale by Order Number
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} response.APIResponse
// @Router /sales/order/{orderNumber} [get]
func (h *SaleHandler) GetSaleByOrderNumber(c *gin.Context) {
	sale, err := h.saleService.GetSaleByOrderNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", gin.H{"sale": sale})
}
