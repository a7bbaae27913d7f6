package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer handles customer creation
// @Summary Create Customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CustomerRequest true "Customer data"
// @Success 201 {object} response.APIResponse
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", gin.H{"customer": customer})
}

// ListCustomers handles listing customers
// @Summary List Customers
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// GetCustomer handles fetching a single customer
// @Summary Get Customer
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} response.APIResponse
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", gin.H{"customer": customer})
}

// UpdateCustomer handles customer updates
// @Summary Update Customer
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body request.UpdateCustomerRequest true "Customer fields"
// @Success 200 {object} response.APIResponse
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", gin.H{"customer": customer})
}

// DeleteCustomer handles customer deletion
// @Summary Delete Customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
