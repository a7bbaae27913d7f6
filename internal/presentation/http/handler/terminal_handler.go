package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// TerminalHandler handles terminal HTTP requests
type TerminalHandler struct {
	terminalService *service.TerminalService
}

// NewTerminalHandler creates a new terminal handler
func NewTerminalHandler(terminalService *service.TerminalService) *TerminalHandler {
	return &TerminalHandler{terminalService: terminalService}
}

// CreateTerminal handles terminal registration
// @Summary Create Terminal
// @Tags terminals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.TerminalRequest true "Terminal data"
// @Success 201 {object} response.APIResponse
// @Router /terminals [post]
func (h *TerminalHandler) CreateTerminal(c *gin.Context) {
	var req request.TerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	terminal, err := h.terminalService.CreateTerminal(c.Request.Context(), &service.TerminalInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Terminal created successfully", gin.H{"terminal": terminal})
}

// ListTerminals handles listing terminals
// @Summary List Terminals
// @Tags terminals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /terminals [get]
func (h *TerminalHandler) ListTerminals(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	terminals, err := h.terminalService.ListTerminals(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminals retrieved successfully", gin.H{"terminals": terminals})
}

// GetTerminal handles fetching a single terminal
// @Summary Get Terminal
// @Tags terminals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Terminal ID"
// @Success 200 {object} response.APIResponse
// @Router /terminals/{id} [get]
func (h *TerminalHandler) GetTerminal(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid terminal ID")
		return
	}

	terminal, err := h.terminalService.GetTerminal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminal retrieved successfully", gin.H{"terminal": terminal})
}

// UpdateTerminal handles terminal updates
// @Summary Update Terminal
// @Tags terminals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Terminal ID"
// @Param request body request.TerminalRequest true "Terminal fields"
// @Success 200 {object} response.APIResponse
// @Router /terminals/{id} [put]
func (h *TerminalHandler) UpdateTerminal(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid terminal ID")
		return
	}

	var req request.TerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	terminal, err := h.terminalService.UpdateTerminal(c.Request.Context(), id, &service.TerminalInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminal updated successfully", gin.H{"terminal": terminal})
}

// SetActive handles activating or deactivating a terminal
// @Summary Activate/Deactivate Terminal
// @Tags terminals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Terminal ID"
// @Param request body request.SetActiveRequest true "Active flag"
// @Success 200 {object} response.APIResponse
// @Router /terminals/{id}/active [put]
func (h *TerminalHandler) SetActive(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid terminal ID")
		return
	}

	var req request.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	terminal, err := h.terminalService.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Terminal updated successfully", gin.H{"terminal": terminal})
}
