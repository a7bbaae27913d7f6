package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles fetching the business profile
// @Summary Get Settings
// @Description Get the business profile printed on receipts
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", gin.H{"settings": settings})
}

// UpdateSettings handles updating the business profile
// @Summary Update Settings
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings data"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		BusinessName:  req.BusinessName,
		Address:       req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		TaxID:         req.TaxID,
		Currency:      req.Currency,
		ReceiptFooter: req.ReceiptFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", gin.H{"settings": settings})
}
