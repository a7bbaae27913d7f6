package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory handles category creation
// @Summary Create Category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCategoryRequest true "Category data"
// @Success 201 {object} response.APIResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", gin.H{"category": category})
}

// ListCategories handles listing categories
// @Summary List Categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.categoryService.ListCategories(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Categories retrieved successfully", result)
}

// GetCategory handles fetching a single category
// @Summary Get Category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.APIResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", gin.H{"category": category})
}

// UpdateCategory handles category updates
// @Summary Update Category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body request.UpdateCategoryRequest true "Category fields"
// @Success 200 {object} response.APIResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &service.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory handles category deletion
// @Summary Delete Category
// @Tags categories
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SupplierHandler handles supplier HTTP requests
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// CreateSupplier handles supplier creation
// @Summary Create Supplier
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.SupplierRequest true "Supplier data"
// @Success 201 {object} response.APIResponse
// @Router /suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), &service.SupplierInput{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", gin.H{"supplier": supplier})
}

// ListSuppliers handles listing suppliers
// @Summary List Suppliers
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.supplierService.ListSuppliers(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// GetSupplier handles fetching a single supplier
// @Summary Get Supplier
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.APIResponse
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", gin.H{"supplier": supplier})
}

// UpdateSupplier handles supplier updates
// @Summary Update Supplier
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param request body request.SupplierRequest true "Supplier fields"
// @Success 200 {object} response.APIResponse
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, &service.SupplierInput{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", gin.H{"supplier": supplier})
}

// DeleteSupplier handles supplier deletion
// @Summary Delete Supplier
// @Tags suppliers
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 204
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
