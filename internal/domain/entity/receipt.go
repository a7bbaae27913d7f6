package entity

// ReceiptHeader holds the business header printed at the top of a receipt.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// ReceiptPayment represents one tender line on a receipt. A sale settled
// with split payments prints one line per method.
type ReceiptPayment struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity; it is composed from sale data at print time.
type Receipt struct {
	Header      ReceiptHeader    `json:"header"`
	OrderNumber string           `json:"order_number"`
	Date        string           `json:"date"`
	Terminal    string           `json:"terminal,omitempty"`
	Cashier     string           `json:"cashier,omitempty"`
	Customer    string           `json:"customer,omitempty"`
	Items       []ReceiptItem    `json:"items"`
	Total       float64          `json:"total"`
	Payments    []ReceiptPayment `json:"payments"`
	AmountPaid  float64          `json:"amount_paid"`
	Change      float64          `json:"change"`
	BalanceDue  float64          `json:"balance_due"`
	Footer      string           `json:"footer,omitempty"`
}
