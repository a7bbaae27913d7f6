package request

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string `json:"description"`
}

// SupplierRequest represents a supplier create or update request
type SupplierRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	ContactName *string `json:"contact_name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

// CustomerRequest represents a customer create request
type CustomerRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// TerminalRequest represents a terminal create or update request
type TerminalRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Location *string `json:"location"`
}

// SetActiveRequest toggles an is_active flag
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
