package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus handles printer status checks
// @Summary Printer Status
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", gin.H{"status": h.printerService.GetStatus()})
}

// TestPrint handles printing a test page
// @Summary Test Print
// @Description Print a sample receipt to verify the printer setup
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /printer/test [post]
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// The formatted receipt still comes back so the till can show it
		response.OK(c, "Printer unavailable, returning receipt data", gin.H{
			"receipt": receipt,
			"printed": false,
		})
		return
	}

	response.OK(c, "Test page printed successfully", gin.H{
		"receipt": receipt,
		"printed": true,
	})
}

// PrintReceipt handles printing a receipt for a sale
// @Summary Print Receipt
// @Description Print the receipt for a sale, returning the receipt data either way
// @Tags printer
// @Security BearerAuth
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id}/receipt [post]
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	saleID, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.printerService.PrintSaleReceipt(c.Request.Context(), saleID)
	if err != nil {
		if receipt == nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Printer unavailable, returning receipt data", gin.H{
			"receipt": receipt,
			"printed": false,
		})
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": receipt,
		"printed": true,
	})
}
