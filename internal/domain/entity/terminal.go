package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Terminal represents a physical point-of-sale station. Sales and payments
// are rejected for inactive terminals.
type Terminal struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:100;unique;not null" json:"name"`
	Location  *string   `gorm:"size:255" json:"location,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new terminal
func (t *Terminal) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Terminal model
func (Terminal) TableName() string {
	return "terminals"
}
