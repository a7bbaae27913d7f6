package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kipsang/dukapos-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(string)
	if !ok {
		return ""
	}
	return enum.Role(role)
}

// IsAdmin checks if the caller has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == enum.RoleAdmin
}

// toCents converts a decimal currency amount from the API into stored cents
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
