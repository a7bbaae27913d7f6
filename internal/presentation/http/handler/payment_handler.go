package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/domain/enum"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPayment handles recording a payment against an existing sale
// @Summary Record Payment
// @Description Record a payment against a sale, typically clearing a credit balance
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param request body request.RecordPaymentRequest true "Payment data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /sales/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		SaleID:       saleID,
		Amount:       toCents(req.Amount),
		Method:       enum.PaymentMethod(req.Method),
		TerminalID:   req.TerminalID,
		Reference:    req.Reference,
		ReceivedByID: GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", gin.H{"payment": payment})
}

// ListSalePayments handles listing payments for one sale
// @Summary List Sale Payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Router /sales/{id}/payments [get]
func (h *PaymentHandler) ListSalePayments(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	payments, err := h.paymentService.ListPaymentsBySale(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", gin.H{"payments": payments})
}

// GetPayment handles fetching a single payment
// @Summary Get Payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.APIResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", gin.H{"payment": payment})
}

// ListPayments handles listing payments across sales
// @Summary List Payments
// @Description List payments with optional date bounds
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	var dateFrom, dateTo *time.Time
	if v := c.Query("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid date_from, expected YYYY-MM-DD")
			return
		}
		dateFrom = &t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "Invalid date_to, expected YYYY-MM-DD")
			return
		}
		end := t.AddDate(0, 0, 1)
		dateTo = &end
	}

	payments, total, err := h.paymentService.ListPayments(c.Request.Context(), params, dateFrom, dateTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	response.SuccessWithPagination(c, 200, "Payments retrieved successfully", pagination.NewPaginatedResult(payments, pag))
}
