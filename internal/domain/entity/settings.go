package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessSettings holds the single-row business profile used on receipts
// and reports.
type BusinessSettings struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BusinessName  string    `gorm:"size:255;not null" json:"business_name"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	Phone         *string   `gorm:"size:50" json:"phone,omitempty"`
	Email         *string   `gorm:"size:255" json:"email,omitempty"`
	TaxID         *string   `gorm:"size:100;column:tax_id" json:"tax_id,omitempty"`
	Currency      string    `gorm:"size:10;default:'KES'" json:"currency"`
	ReceiptFooter *string   `gorm:"size:255" json:"receipt_footer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *BusinessSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "business_settings"
}
