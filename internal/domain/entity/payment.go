package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// Payment represents money received against a sale. Payments are immutable
// once recorded; corrections happen through new sales, never edits.
type Payment struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	TerminalID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"terminal_id"`
	ReceivedByID *uuid.UUID         `gorm:"type:uuid;index" json:"received_by_id,omitempty"`
	Amount       int64              `gorm:"not null" json:"-"` // Stored in cents
	Method       enum.PaymentMethod `gorm:"size:20;not null" json:"method"`
	Reference    *string            `gorm:"size:100" json:"reference,omitempty"`
	CreatedAt    time.Time          `gorm:"index" json:"created_at"`

	// Relationships
	Sale       Sale     `gorm:"foreignKey:SaleID" json:"-"`
	Terminal   Terminal `gorm:"foreignKey:TerminalID" json:"-"`
	ReceivedBy *User    `gorm:"foreignKey:ReceivedByID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
