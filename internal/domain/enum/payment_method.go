package enum

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodMpesa  PaymentMethod = "mpesa"
	PaymentMethodEquity PaymentMethod = "equity"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodCredit PaymentMethod = "credit"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// Valid reports whether the payment method is one of the known values
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodMpesa, PaymentMethodEquity,
		PaymentMethodCard, PaymentMethodMobile, PaymentMethodCredit:
		return true
	}
	return false
}

// IsCredit reports whether the method defers payment. Credit payments never
// count toward a sale's amount_paid.
func (m PaymentMethod) IsCredit() bool {
	return m == PaymentMethodCredit
}
