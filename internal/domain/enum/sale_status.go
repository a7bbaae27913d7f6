package enum

// SaleStatus represents the settlement status of a sale
type SaleStatus string

const (
	SaleStatusPending SaleStatus = "pending"
	SaleStatusPartial SaleStatus = "partial"
	SaleStatusPaid    SaleStatus = "paid"
)

func (s SaleStatus) String() string {
	return string(s)
}

// Valid reports whether the status is one of the known values
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusPending, SaleStatusPartial, SaleStatusPaid:
		return true
	}
	return false
}
