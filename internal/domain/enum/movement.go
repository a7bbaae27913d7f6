package enum

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementTypeIn  MovementType = "in"
	MovementTypeOut MovementType = "out"
)

func (t MovementType) String() string {
	return string(t)
}

// Valid reports whether the movement type is one of the known values
func (t MovementType) Valid() bool {
	return t == MovementTypeIn || t == MovementTypeOut
}

// MovementReason records why stock moved
type MovementReason string

const (
	MovementReasonPurchase   MovementReason = "purchase"
	MovementReasonSale       MovementReason = "sale"
	MovementReasonReturn     MovementReason = "return"
	MovementReasonAdjustment MovementReason = "adjustment"
	MovementReasonDamage     MovementReason = "damage"
	MovementReasonOther      MovementReason = "other"
)

func (r MovementReason) String() string {
	return string(r)
}

// Valid reports whether the reason is one of the known values
func (r MovementReason) Valid() bool {
	switch r {
	case MovementReasonPurchase, MovementReasonSale, MovementReasonReturn,
		MovementReasonAdjustment, MovementReasonDamage, MovementReasonOther:
		return true
	}
	return false
}
