package request

// PrintReceiptRequest is the request body for printing a sale receipt.
type PrintReceiptRequest struct {
	SaleID string `json:"sale_id" binding:"required,uuid"`
}
