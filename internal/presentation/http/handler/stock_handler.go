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

// StockHandler handles stock ledger HTTP requests
type StockHandler struct {
	stockService *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService *service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// CreateMovement handles recording a manual stock movement
// @Summary Create Stock Movement
// @Description Record a stock movement and adjust the product quantity
// @Tags stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.StockMovementRequest true "Movement data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /stock/movements [post]
func (h *StockHandler) CreateMovement(c *gin.Context) {
	var req request.StockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	movement, err := h.stockService.ApplyMovement(c.Request.Context(), &service.ApplyMovementInput{
		ProductID:   req.ProductID,
		Type:        enum.MovementType(req.Type),
		Quantity:    req.Quantity,
		Reason:      enum.MovementReason(req.Reason),
		Notes:       req.Notes,
		CreatedByID: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Stock movement recorded successfully", gin.H{"movement": movement})
}

// ListMovements handles listing the movement history
// @Summary List Stock Movements
// @Description List movement history with product, type, reason and date filters
// @Tags stock
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /stock/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	var req request.MovementFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.MovementFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	params.Pagination.Validate()

	if req.ProductID != "" {
		id, err := utils.ParseUUID(req.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID")
			return
		}
		params.ProductID = &id
	}
	if req.Type != "" {
		mt := enum.MovementType(req.Type)
		if !mt.Valid() {
			response.BadRequest(c, "Invalid movement type")
			return
		}
		params.Type = &mt
	}
	if req.Reason != "" {
		reason := enum.MovementReason(req.Reason)
		if !reason.Valid() {
			response.BadRequest(c, "Invalid movement reason")
			return
		}
		params.Reason = &reason
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

	movements, total, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Movements retrieved successfully", pagination.NewPaginatedResult(movements, pag))
}

// GetMovement handles fetching a single movement
// @Summary Get Stock Movement
// @Tags stock
// @Security BearerAuth
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} response.APIResponse
// @Router /stock/movements/{id} [get]
func (h *StockHandler) GetMovement(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid movement ID")
		return
	}

	movement, err := h.stockService.GetMovement(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Movement retrieved successfully", gin.H{"movement": movement})
}
