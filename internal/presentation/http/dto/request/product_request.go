package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request. Prices are
// decimal currency; they are converted to cents at the boundary.
type CreateProductRequest struct {
	Name            string     `json:"name" binding:"required,min=2,max=255"`
	SKU             string     `json:"sku" binding:"omitempty,max=100"`
	Description     *string    `json:"description"`
	CategoryID      *uuid.UUID `json:"category_id"`
	SupplierID      *uuid.UUID `json:"supplier_id"`
	InitialQuantity int        `json:"initial_quantity" binding:"min=0"`
	ReorderPoint    int        `json:"reorder_point" binding:"min=0"`
	CostPrice       float64    `json:"cost_price" binding:"min=0"`
	UnitPrice       float64    `json:"unit_price" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=2,max=255"`
	SKU          *string    `json:"sku" binding:"omitempty,min=1,max=100"`
	Description  *string    `json:"description"`
	CategoryID   *uuid.UUID `json:"category_id"`
	SupplierID   *uuid.UUID `json:"supplier_id"`
	ReorderPoint *int       `json:"reorder_point" binding:"omitempty,min=0"`
	CostPrice    *float64   `json:"cost_price" binding:"omitempty,min=0"`
	UnitPrice    *float64   `json:"unit_price" binding:"omitempty,min=0"`
	IsActive     *bool      `json:"is_active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	SupplierID string `form:"supplier_id"`
	LowStock   bool   `form:"low_stock"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
