package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// User represents a staff account able to log into the system
type User struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName           string         `gorm:"size:255;not null" json:"first_name"`
	LastName            string         `gorm:"size:255;not null" json:"last_name"`
	Username            string         `gorm:"size:255;unique;not null" json:"username"`
	Email               string         `gorm:"size:255;unique;not null" json:"email"`
	Password            string         `gorm:"size:255" json:"-"`
	Role                enum.Role      `gorm:"size:20;default:'staff'" json:"role"`
	Phone               *string        `gorm:"size:50" json:"phone,omitempty"`
	Provider            string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID          *string        `gorm:"size:255" json:"-"`
	Photo               *string        `gorm:"size:255" json:"photo,omitempty"`
	IsActive            bool           `gorm:"default:true" json:"is_active"`
	ForcePasswordChange bool           `gorm:"default:false" json:"force_password_change"`
	LastLoginAt         *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == enum.RoleAdmin
}

// IsManager reports whether the user holds the manager role or above
func (u *User) IsManager() bool {
	return u.Role == enum.RoleAdmin || u.Role == enum.RoleManager
}
