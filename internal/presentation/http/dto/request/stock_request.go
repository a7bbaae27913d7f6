package request

import "github.com/google/uuid"

// StockMovementRequest represents a manual stock movement
type StockMovementRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Type      string    `json:"type" binding:"required,oneof=in out"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Reason    string    `json:"reason" binding:"required"`
	Notes     *string   `json:"notes"`
}

// MovementFilterRequest represents movement history filter parameters
type MovementFilterRequest struct {
	ProductID string `form:"product_id"`
	Type      string `form:"type"`
	Reason    string `form:"reason"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
