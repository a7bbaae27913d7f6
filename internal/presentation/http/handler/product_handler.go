package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kipsang/dukapos-api/internal/application/service"
	"github.com/kipsang/dukapos-api/internal/domain/repository"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/dukapos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/dukapos-api/pkg/pagination"
	"github.com/kipsang/dukapos-api/pkg/utils"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct handles product creation
// @Summary Create Product
// @Description Create a new product, optionally with initial stock
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:            req.Name,
		SKU:             req.SKU,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		SupplierID:      req.SupplierID,
		InitialQuantity: req.InitialQuantity,
		ReorderPoint:    req.ReorderPoint,
		CostPrice:       toCents(req.CostPrice),
		UnitPrice:       toCents(req.UnitPrice),
		CreatedByID:     GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", gin.H{"product": product})
}

// ListProducts handles listing products with filters
// @Summary List Products
// @Description List products with search, category/supplier filters and pagination
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		LowStock:   req.LowStock,
		ActiveOnly: req.ActiveOnly,
	}
	params.Pagination.Validate()

	if req.CategoryID != "" {
		id, err := utils.ParseUUID(req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		params.CategoryID = &id
	}
	if req.SupplierID != "" {
		id, err := utils.ParseUUID(req.SupplierID)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		params.SupplierID = &id
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// GetProduct handles fetching a single product
// @Summary Get Product
// @Description Get a product by ID
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", gin.H{"product": product})
}

// GetProductBySKU handles barcode lookups at the till
// @Summary Get Product by SKU
// @Description Look up a product by its SKU
// @Tags products
// @Security BearerAuth
// @Produce json
// @Param sku path string true "Product SKU"
// @Success 200 {object} response.APIResponse
// @Router /products/sku/{sku} [get]
func (h *ProductHandler) GetProductBySKU(c *gin.Context) {
	product, err := h.productService.GetProductBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", gin.H{"product": product})
}

// UpdateProduct handles product updates
// @Summary Update Product
// @Description Update a product's catalog fields
// @Tags products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request.UpdateProductRequest true "Product fields"
// @Success 200 {object} response.APIResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateProductInput{
		Name:         req.Name,
		SKU:          req.SKU,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		SupplierID:   req.SupplierID,
		ReorderPoint: req.ReorderPoint,
		IsActive:     req.IsActive,
	}
	if req.CostPrice != nil {
		cents := toCents(*req.CostPrice)
		input.CostPrice = &cents
	}
	if req.UnitPrice != nil {
		cents := toCents(*req.UnitPrice)
		input.UnitPrice = &cents
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct handles product deletion
// @Summary Delete Product
// @Description Soft delete a product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetLowStockProducts handles the low stock listing
// @Summary Low Stock Products
// @Description List active products at or below their reorder point
// @Tags products
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products/low-stock [get]
func (h *ProductHandler) GetLowStockProducts(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", gin.H{"products": products})
}
