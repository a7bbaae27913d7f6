package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// StockMovement is an immutable audit record of stock entering or leaving
// inventory. Movements are never updated or deleted; a mistake is corrected
// by recording a compensating movement in the opposite direction.
type StockMovement struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	ProductID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"product_id"`
	Type        enum.MovementType   `gorm:"size:10;not null;index" json:"type"`
	Quantity    int                 `gorm:"not null" json:"quantity"`
	Reason      enum.MovementReason `gorm:"size:20;not null;index" json:"reason"`
	Notes       *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID *uuid.UUID          `gorm:"type:uuid;index" json:"created_by_id,omitempty"`
	CreatedAt   time.Time           `gorm:"index" json:"created_at"`

	// Relationships
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedBy *User   `gorm:"foreignKey:CreatedByID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock movement
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
