package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a product in the inventory
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID   *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SupplierID   *uuid.UUID     `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	SKU          string         `gorm:"size:100;unique;not null;column:sku" json:"sku"`
	Description  *string        `gorm:"type:text" json:"description,omitempty"`
	Quantity     int            `gorm:"default:0" json:"quantity"`
	ReorderPoint int            `gorm:"default:0" json:"reorder_point"`
	CostPrice    int64          `gorm:"default:0" json:"-"` // Stored in cents
	UnitPrice    int64          `gorm:"default:0" json:"-"` // Stored in cents
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		CostPrice float64 `json:"cost_price"`
		UnitPrice float64 `json:"unit_price"`
		LowStock  bool    `json:"low_stock"`
	}{
		Alias:     Alias(p),
		CostPrice: float64(p.CostPrice) / 100,
		UnitPrice: float64(p.UnitPrice) / 100,
		LowStock:  p.IsLowStock(),
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the quantity has reached the reorder point
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderPoint
}

// GetUnitPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// Category represents a product category
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;unique;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
