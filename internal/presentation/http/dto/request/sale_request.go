package request

import "github.com/google/uuid"

// SaleItemRequest is one line of a checkout
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"min=0"`
}

// SalePaymentRequest is one payment tendered at checkout
type SalePaymentRequest struct {
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Method     string     `json:"method" binding:"required"`
	TerminalID *uuid.UUID `json:"terminal_id"`
	Reference  *string    `json:"reference"`
}

// CreateSaleRequest represents a checkout request
type CreateSaleRequest struct {
	TerminalID uuid.UUID            `json:"terminal_id" binding:"required"`
	CustomerID *uuid.UUID           `json:"customer_id"`
	Notes      *string              `json:"notes"`
	Items      []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments   []SalePaymentRequest `json:"payments" binding:"omitempty,dive"`
}

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Status     string `form:"status"`
	TerminalID string `form:"terminal_id"`
	CustomerID string `form:"customer_id"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// RecordPaymentRequest represents a standalone payment against a sale
type RecordPaymentRequest struct {
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Method     string     `json:"method" binding:"required"`
	TerminalID *uuid.UUID `json:"terminal_id"`
	Reference  *string    `json:"reference"`
}
