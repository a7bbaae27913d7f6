package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// Sale represents a completed checkout: line items, payments and the derived
// settlement state. Sales are append-only; there is no delete path.
type Sale struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber string          `gorm:"size:20;unique;not null" json:"order_number"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	TerminalID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"terminal_id"`
	CreatedByID *uuid.UUID      `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	TotalAmount int64           `gorm:"not null;default:0" json:"-"` // Stored in cents
	AmountPaid  int64           `gorm:"not null;default:0" json:"-"` // Stored in cents
	Status      enum.SaleStatus `gorm:"size:20;default:'pending';index" json:"status"`
	Notes       *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Customer  *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Terminal  Terminal   `gorm:"foreignKey:TerminalID" json:"terminal,omitempty"`
	CreatedBy *User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Items     []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Payments  []Payment  `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
		AmountPaid  float64 `json:"amount_paid"`
		BalanceDue  float64 `json:"balance_due"`
	}{
		Alias:       Alias(s),
		TotalAmount: float64(s.TotalAmount) / 100,
		AmountPaid:  float64(s.AmountPaid) / 100,
		BalanceDue:  float64(s.BalanceDue()) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// BalanceDue returns the outstanding amount. It is always derived, never
// stored, so it cannot drift from total_amount and amount_paid.
func (s *Sale) BalanceDue() int64 {
	return s.TotalAmount - s.AmountPaid
}

// IsFullyPaid reports whether non-credit payments cover the total
func (s *Sale) IsFullyPaid() bool {
	return s.AmountPaid >= s.TotalAmount
}

// SaleItem represents a line item in a sale. The unit price is snapshotted
// from the request at creation time so later product price changes do not
// rewrite history.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	Subtotal  int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		Alias:     Alias(si),
		UnitPrice: float64(si.UnitPrice) / 100,
		Subtotal:  float64(si.Subtotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
