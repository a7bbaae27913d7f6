package request

// UpdateUserRequest represents a profile update request
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=2,max=255"`
	LastName  *string `json:"last_name" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone"`
	Photo     *string `json:"photo"`
}

// ChangeRoleRequest represents a role change request
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin manager staff"`
}

// UpdateSettingsRequest represents a business profile update
type UpdateSettingsRequest struct {
	BusinessName  string  `json:"business_name" binding:"required,min=2,max=255"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	TaxID         *string `json:"tax_id"`
	Currency      string  `json:"currency" binding:"required,min=2,max=10"`
	ReceiptFooter *string `json:"receipt_footer"`
}
